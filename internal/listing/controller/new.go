package controller

import (
	"sync"
	"sync/atomic"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/repository"
	pkgLog "marketplace-browser/pkg/log"
)

type implController struct {
	l        pkgLog.Logger
	fetcher  repository.Fetcher
	renderer listing.Renderer
	cache    listing.Cache           // nil disables caching
	url      listing.URLSynchronizer // nil disables location sync

	surfaceID string
	variant   listing.Variant
	limit     int
	delta     int

	inFlight atomic.Bool

	mu    sync.Mutex
	state listing.ControllerState
	ui    listing.UIState

	// An input error replaces ui.Error only until the next operation, which
	// puts back the fetch error it was hiding.
	inputErr  bool
	hiddenErr string
}

var _ listing.Controller = (*implController)(nil)

// New creates a pagination controller for one listing surface.
// cache and url are optional and may be nil.
func New(
	l pkgLog.Logger,
	fetcher repository.Fetcher,
	renderer listing.Renderer,
	cache listing.Cache,
	url listing.URLSynchronizer,
	opt Options,
) *implController {
	opt = opt.withDefaults()
	return &implController{
		l:         l,
		fetcher:   fetcher,
		renderer:  renderer,
		cache:     cache,
		url:       url,
		surfaceID: opt.SurfaceID,
		variant:   opt.Variant,
		limit:     opt.Limit,
		delta:     opt.ControlsDelta,
		state: listing.ControllerState{
			CurrentPage: 1,
		},
	}
}
