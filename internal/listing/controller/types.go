package controller

import "marketplace-browser/internal/listing"

const (
	DefaultPageLimit = 20
	DefaultSurfaceID = "products-grid"
)

// Options configures a controller.
type Options struct {
	SurfaceID     string          // renderer target; DefaultSurfaceID when empty
	Variant       listing.Variant // card layout; explore when empty or unknown
	Limit         int             // page size; DefaultPageLimit when < 1
	ControlsDelta int             // pages listed either side of the current one
}

func (o Options) withDefaults() Options {
	if o.SurfaceID == "" {
		o.SurfaceID = DefaultSurfaceID
	}
	if !o.Variant.Valid() {
		o.Variant = listing.VariantExplore
	}
	if o.Limit < 1 {
		o.Limit = DefaultPageLimit
	}
	if o.ControlsDelta < 1 {
		o.ControlsDelta = listing.DefaultControlsDelta
	}
	return o
}

// errorMessage is shown on the surface when a load fails.
const errorMessage = "Failed to load products"
