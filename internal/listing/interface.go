package listing

import (
	"context"

	"marketplace-browser/internal/model"
)

// Controller is the single owner of what a listing surface displays.
// Operations never return errors: failures become UI state.
type Controller interface {
	// LoadPage loads page with filters (nil keeps the current filters).
	// It is a no-op while another load is in flight.
	LoadPage(ctx context.Context, page int, filters *FilterSet) Outcome

	// Search sets the free-text term and restarts at page 1.
	Search(ctx context.Context, query string) Outcome
	// FilterByCategory merges a category constraint and restarts at page 1.
	FilterByCategory(ctx context.Context, category string) Outcome
	// FilterByPrice merges price bounds and restarts at page 1.
	FilterByPrice(ctx context.Context, minPrice, maxPrice string) Outcome

	NextPage(ctx context.Context) Outcome
	PrevPage(ctx context.Context) Outcome
	GoToPage(ctx context.Context, page int) Outcome

	// Retry re-issues the last attempted load.
	Retry(ctx context.Context) Outcome
	// Refresh drops cached pages and reloads the current one.
	Refresh(ctx context.Context) Outcome

	// InitFromLocation restores page and filters from the location and loads them.
	InitFromLocation(ctx context.Context) Outcome

	SurfaceID() string
	Snapshot() Snapshot
}

// Renderer draws product cards onto a surface. The controller does not
// inspect what it does.
type Renderer interface {
	Render(items []model.Product, surfaceID string, variant Variant)
}

// Cache is the optional response cache a controller may be built with.
type Cache interface {
	Get(req PageRequest) (PageEnvelope, bool)
	Put(req PageRequest, env PageEnvelope)
	Clear()
}

// URLSynchronizer maps controller state to and from the navigable location.
type URLSynchronizer interface {
	Serialize(state LocationState) string
	Deserialize(query string) LocationState
	// Apply replaces the location's query in place and returns what was written.
	Apply(state LocationState) string
	// Restore reads the current location.
	Restore() LocationState
}
