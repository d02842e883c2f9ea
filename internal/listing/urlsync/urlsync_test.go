package urlsync_test

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/urlsync"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSerialize(t *testing.T) {
	s := urlsync.New(urlsync.NewMemoryLocation("/explore"))

	t.Run("Page Only", func(t *testing.T) {
		assert.Equal(t, "page=1", s.Serialize(listing.LocationState{Page: 1}))
	})

	t.Run("Invalid Page Written As Default", func(t *testing.T) {
		assert.Equal(t, "page=1", s.Serialize(listing.LocationState{Page: 0}))
	})

	t.Run("All Filters", func(t *testing.T) {
		q := s.Serialize(listing.LocationState{
			Page: 3,
			Filters: listing.FilterSet{
				Search:     "red lamp",
				Categories: []string{"home", "decor"},
				MinPrice:   price("1000"),
				MaxPrice:   price("2500.50"),
			},
		})
		params, err := url.ParseQuery(q)
		require.NoError(t, err)
		assert.Equal(t, "3", params.Get("page"))
		assert.Equal(t, "red lamp", params.Get("q"))
		assert.Equal(t, "decor,home", params.Get("categories"))
		assert.Equal(t, "1000", params.Get("minPrice"))
		assert.Equal(t, "2500.5", params.Get("maxPrice"))
	})

	t.Run("Absent Filters Omitted", func(t *testing.T) {
		q := s.Serialize(listing.LocationState{Page: 2, Filters: listing.FilterSet{Search: "shoes"}})
		params, _ := url.ParseQuery(q)
		assert.Len(t, params, 2)
		assert.NotContains(t, params, "categories")
		assert.NotContains(t, params, "minPrice")
	})
}

func TestDeserialize(t *testing.T) {
	s := urlsync.New(urlsync.NewMemoryLocation(""))

	t.Run("Shared Link", func(t *testing.T) {
		state := s.Deserialize("?page=2&q=lamp&minPrice=1000")
		assert.Equal(t, 2, state.Page)
		assert.Equal(t, "lamp", state.Filters.Search)
		require.NotNil(t, state.Filters.MinPrice)
		assert.True(t, state.Filters.MinPrice.Equal(decimal.NewFromInt(1000)))
		assert.Nil(t, state.Filters.MaxPrice)
		assert.Empty(t, state.Filters.Categories)
	})

	t.Run("Search Alias", func(t *testing.T) {
		assert.Equal(t, "bags", s.Deserialize("search=bags").Filters.Search)
		assert.Equal(t, "q wins", s.Deserialize("search=bags&q=q+wins").Filters.Search)
	})

	t.Run("Categories List", func(t *testing.T) {
		state := s.Deserialize("categories=shoes,bags,all,")
		assert.Equal(t, []string{"bags", "shoes"}, state.Filters.Categories)
	})

	t.Run("Malformed Values Fall Back", func(t *testing.T) {
		for _, q := range []string{"page=abc", "page=-4", "page=0", "page=", "", "%zz&page=nope"} {
			state := s.Deserialize(q)
			assert.Equal(t, 1, state.Page, "query %q", q)
		}

		state := s.Deserialize("page=2&minPrice=cheap&maxPrice=")
		assert.Equal(t, 2, state.Page)
		assert.Nil(t, state.Filters.MinPrice)
		assert.Nil(t, state.Filters.MaxPrice)
	})

	t.Run("Leading Zero Page", func(t *testing.T) {
		assert.Equal(t, 8, s.Deserialize("page=08").Page)
	})
}

func TestRoundTrip(t *testing.T) {
	s := urlsync.New(urlsync.NewMemoryLocation(""))

	states := []listing.LocationState{
		{Page: 1},
		{Page: 7, Filters: listing.FilterSet{Search: "lamp"}},
		{Page: 2, Filters: listing.FilterSet{Categories: []string{"bags"}}},
		{Page: 4, Filters: listing.FilterSet{Categories: []string{"bags", "shoes"}, MaxPrice: price("99.99")}},
		{Page: 3, Filters: listing.FilterSet{}.WithCategory("shoes, bags")},
		{Page: 5, Filters: listing.FilterSet{Categories: []string{"home,garden", "home"}}},
		{Page: 12, Filters: listing.FilterSet{
			Search:     "a&b=c, d",
			Categories: []string{"home"},
			MinPrice:   price("0"),
			MaxPrice:   price("1000000"),
		}},
	}

	for _, want := range states {
		got := s.Deserialize(s.Serialize(want))
		assert.Equal(t, want.Page, got.Page)
		assert.True(t, want.Filters.Equal(got.Filters), "filters %+v != %+v", want.Filters.Values(), got.Filters.Values())
	}
}

func TestCommaJoinedCategory(t *testing.T) {
	s := urlsync.New(urlsync.NewMemoryLocation(""))

	f := listing.FilterSet{}.WithCategory("shoes,bags")
	assert.Equal(t, []string{"bags", "shoes"}, f.Categories)

	q := s.Serialize(listing.LocationState{Page: 1, Filters: f})
	got := s.Deserialize(q)
	assert.Equal(t, f.Categories, got.Filters.Categories)
	assert.True(t, f.Equal(got.Filters))

	assert.Nil(t, listing.FilterSet{}.WithCategory(" , all").Categories)
}

func TestApplyAndRestore(t *testing.T) {
	loc := urlsync.NewMemoryLocation("/explore?page=5&q=old")
	s := urlsync.New(loc)

	restored := s.Restore()
	assert.Equal(t, 5, restored.Page)
	assert.Equal(t, "old", restored.Filters.Search)

	q := s.Apply(listing.LocationState{Page: 1, Filters: listing.FilterSet{Search: "new"}})
	assert.Equal(t, "page=1&q=new", q)
	assert.Equal(t, "/explore?page=1&q=new", loc.String())
	assert.Equal(t, 1, loc.Replaced())
}
