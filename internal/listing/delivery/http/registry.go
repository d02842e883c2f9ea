package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/cache"
	"marketplace-browser/internal/listing/controller"
	"marketplace-browser/internal/listing/render"
	"marketplace-browser/internal/listing/repository"
	"marketplace-browser/internal/listing/urlsync"
	pkgLog "marketplace-browser/pkg/log"
)

const (
	defaultMaxSurfaces = 1000
	defaultSurfaceTTL  = 30 * time.Minute
	defaultLocation    = "/explore"
)

// surface is one headless listing page: a controller plus the location it
// keeps in sync.
type surface struct {
	id        string
	variant   listing.Variant
	ctrl      listing.Controller
	loc       *urlsync.MemoryLocation
	createdAt time.Time
}

// registry owns every live surface. All surfaces share one response cache
// and one grid renderer; idle surfaces expire.
type registry struct {
	l        pkgLog.Logger
	fetcher  repository.Fetcher
	cache    cache.Store
	grids    *render.Memory
	surfaces *expirable.LRU[string, *surface]
	defaults controller.Options
}

func newRegistry(l pkgLog.Logger, fetcher repository.Fetcher, c cache.Store, opt Options) *registry {
	maxSurfaces := opt.MaxSurfaces
	if maxSurfaces <= 0 {
		maxSurfaces = defaultMaxSurfaces
	}
	ttl := opt.SurfaceTTL
	if ttl <= 0 {
		ttl = defaultSurfaceTTL
	}

	grids := render.NewMemory()
	r := &registry{
		l:       l,
		fetcher: fetcher,
		cache:   c,
		grids:   grids,
		defaults: controller.Options{
			Variant: opt.Variant,
			Limit:   opt.PageLimit,
		},
	}
	r.surfaces = expirable.NewLRU[string, *surface](maxSurfaces, func(id string, _ *surface) {
		grids.Forget(id)
	}, ttl)
	return r
}

// create builds a surface from a location such as "/explore?page=2&q=lamp"
// and loads its first page.
func (r *registry) create(ctx context.Context, in createInput) (*surface, listing.Outcome) {
	location := in.Location
	if location == "" {
		location = defaultLocation
	}

	opt := r.defaults
	if in.Variant != "" {
		opt.Variant = listing.Variant(in.Variant)
	}
	if in.Limit > 0 {
		opt.Limit = in.Limit
	}
	if !opt.Variant.Valid() {
		opt.Variant = listing.VariantExplore
	}
	opt.SurfaceID = uuid.NewString()

	loc := urlsync.NewMemoryLocation(location)

	s := &surface{
		id:        opt.SurfaceID,
		variant:   opt.Variant,
		ctrl:      controller.New(r.l, r.fetcher, r.grids, r.cache, urlsync.New(loc), opt),
		loc:       loc,
		createdAt: time.Now(),
	}
	r.surfaces.Add(s.id, s)
	r.l.Infof(ctx, "listing.registry: created surface %s at %s", s.id, location)

	return s, s.ctrl.InitFromLocation(ctx)
}

// get returns a live surface and restarts its idle timer.
func (r *registry) get(id string) (*surface, error) {
	s, ok := r.surfaces.Get(id)
	if !ok {
		return nil, listing.ErrSurfaceNotFound
	}
	r.surfaces.Add(id, s)
	return s, nil
}

func (r *registry) remove(id string) error {
	if !r.surfaces.Remove(id) {
		return listing.ErrSurfaceNotFound
	}
	return nil
}

func (r *registry) grid(id string) render.Grid {
	g, _ := r.grids.Grid(id)
	return g
}
