package listing

import (
	"marketplace-browser/internal/model"
)

// Variant selects how a renderer lays out product cards.
type Variant string

const (
	VariantExplore     Variant = "explore"
	VariantSeller      Variant = "seller"
	VariantRecommended Variant = "recommended"
)

// Valid reports whether v is one of the known presentation variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantExplore, VariantSeller, VariantRecommended:
		return true
	}
	return false
}

// PageRequest is one request for a page of products.
type PageRequest struct {
	Page    int
	Limit   int
	Filters FilterSet
}

// Validate checks the page and limit bounds.
func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return ErrInvalidPage
	}
	if r.Limit < 1 {
		return ErrInvalidPage
	}
	return nil
}

// Pagination is the page metadata the search endpoint returns.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	Limit       int  `json:"limit"`
}

// NewPagination derives the next/prev flags from the page counters.
func NewPagination(currentPage, totalPages, totalItems, limit int) Pagination {
	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNextPage: currentPage < totalPages,
		HasPrevPage: currentPage > 1,
		Limit:       limit,
	}
}

// PageEnvelope is one fetched page plus its metadata.
type PageEnvelope struct {
	Items      []model.Product `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// Clone returns a copy whose Items slice is not shared with e.
func (e PageEnvelope) Clone() PageEnvelope {
	out := e
	if e.Items != nil {
		out.Items = make([]model.Product, len(e.Items))
		copy(out.Items, e.Items)
	}
	return out
}

// LocationState is the part of the controller state that lives in the query string.
type LocationState struct {
	Page    int
	Filters FilterSet
}

// ControllerState is what a controller currently shows.
type ControllerState struct {
	CurrentPage  int
	Filters      FilterSet
	IsLoading    bool
	LastEnvelope *PageEnvelope
}

// UIState holds the loading/empty/error bookkeeping of a listing surface.
type UIState struct {
	Loading  bool
	Empty    bool
	Error    string    // last fetch failure shown to the user; empty when none
	Controls *Controls // nil when pagination controls are hidden
	Results  string    // "Showing 1-20 of 57 products"
	Query    string    // query string last applied to the location
}

// Snapshot is a deep copy of a controller's state and UI flags.
type Snapshot struct {
	State ControllerState
	UI    UIState
}

// Outcome reports what a controller operation did.
type Outcome int

const (
	OutcomeNoop    Outcome = iota // nothing to do (out-of-range next/prev, bad page)
	OutcomeSkipped                // a load was already in flight
	OutcomeLoaded                 // items rendered
	OutcomeEmpty                  // zero items, empty state shown
	OutcomeFailed                 // fetch failed, error shown, content preserved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeLoaded:
		return "loaded"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "noop"
	}
}
