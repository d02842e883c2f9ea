package urlsync

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"marketplace-browser/internal/listing"
)

// Query-string keys. ParamSearchAlt is accepted on read only.
const (
	ParamPage       = "page"
	ParamSearch     = "q"
	ParamSearchAlt  = "search"
	ParamCategories = "categories"
	ParamMinPrice   = "minPrice"
	ParamMaxPrice   = "maxPrice"
)

// DefaultPage is used whenever the page parameter is missing or unusable.
const DefaultPage = 1

// Synchronizer maps listing state to a query string and back.
type Synchronizer struct {
	loc Location
}

var _ listing.URLSynchronizer = (*Synchronizer)(nil)

// New creates a Synchronizer writing to loc.
func New(loc Location) *Synchronizer {
	return &Synchronizer{loc: loc}
}

// Serialize encodes state. The page is always written; absent filters never are.
func (s *Synchronizer) Serialize(state listing.LocationState) string {
	page := state.Page
	if page < 1 {
		page = DefaultPage
	}

	params := url.Values{}
	params.Set(ParamPage, strconv.Itoa(page))

	vals := state.Filters.Values()
	if v, ok := vals[listing.FilterSearch]; ok {
		params.Set(ParamSearch, v)
	}
	if v, ok := vals[listing.FilterCategories]; ok {
		params.Set(ParamCategories, v)
	}
	if v, ok := vals[listing.FilterMinPrice]; ok {
		params.Set(ParamMinPrice, v)
	}
	if v, ok := vals[listing.FilterMaxPrice]; ok {
		params.Set(ParamMaxPrice, v)
	}
	return params.Encode()
}

// Deserialize decodes query. Unparseable values fall back to their defaults
// (page 1, bound absent) instead of failing.
func (s *Synchronizer) Deserialize(query string) listing.LocationState {
	// ParseQuery keeps every pair it managed to decode even when it reports an error.
	params, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))

	state := listing.LocationState{Page: parsePage(params.Get(ParamPage))}

	search := params.Get(ParamSearch)
	if search == "" {
		search = params.Get(ParamSearchAlt)
	}
	state.Filters.Search = search

	if raw := params.Get(ParamCategories); raw != "" {
		state.Filters.Categories = listing.SplitCategories(raw)
	}
	if p, err := listing.ParsePrice(params.Get(ParamMinPrice)); err == nil {
		state.Filters.MinPrice = p
	}
	if p, err := listing.ParsePrice(params.Get(ParamMaxPrice)); err == nil {
		state.Filters.MaxPrice = p
	}
	return state
}

// Apply replaces the location's query with the encoding of state.
func (s *Synchronizer) Apply(state listing.LocationState) string {
	query := s.Serialize(state)
	s.loc.Replace(query)
	return query
}

// Restore decodes the location's current query.
func (s *Synchronizer) Restore() listing.LocationState {
	return s.Deserialize(s.loc.Query())
}

func parsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPage
	}
	// Leading zeros would make cast read the value as octal.
	if trimmed := strings.TrimLeft(raw, "0"); trimmed != "" {
		raw = trimmed
	}
	page, err := cast.ToIntE(raw)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}
