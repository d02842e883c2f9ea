package listing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Filter names, shared by the cache key, the query string and the backend request.
const (
	FilterSearch     = "search"
	FilterCategories = "categories"
	FilterMinPrice   = "minPrice"
	FilterMaxPrice   = "maxPrice"
)

// CategoryAll is the chip value meaning "no category constraint".
const CategoryAll = "all"

// FilterSet is the active set of search constraints. A zero field means
// "no constraint" and is never serialized. MinPrice <= MaxPrice is the
// caller's responsibility.
type FilterSet struct {
	Search     string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// Clone returns a deep copy of f.
func (f FilterSet) Clone() FilterSet {
	out := FilterSet{Search: f.Search}
	if len(f.Categories) > 0 {
		out.Categories = append([]string(nil), f.Categories...)
	}
	if f.MinPrice != nil {
		v := *f.MinPrice
		out.MinPrice = &v
	}
	if f.MaxPrice != nil {
		v := *f.MaxPrice
		out.MaxPrice = &v
	}
	return out
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return len(f.Values()) == 0
}

// WithSearch returns f with the search term replaced. Blank clears it.
func (f FilterSet) WithSearch(query string) FilterSet {
	out := f.Clone()
	out.Search = strings.TrimSpace(query)
	return out
}

// WithCategory returns f constrained to category. A comma-joined value
// selects each listed category, exactly as it reads back from a link.
// Empty or CategoryAll clears the constraint.
func (f FilterSet) WithCategory(category string) FilterSet {
	out := f.Clone()
	out.Categories = SplitCategories(category)
	return out
}

// WithPriceRange returns f with both price bounds replaced. Nil clears a bound.
func (f FilterSet) WithPriceRange(lo, hi *decimal.Decimal) FilterSet {
	out := f.Clone()
	out.MinPrice, out.MaxPrice = nil, nil
	if lo != nil {
		v := *lo
		out.MinPrice = &v
	}
	if hi != nil {
		v := *hi
		out.MaxPrice = &v
	}
	return out
}

// Values returns the present constraints in their canonical string form.
// Categories are de-duplicated, sorted and comma-joined.
func (f FilterSet) Values() map[string]string {
	vals := make(map[string]string, 4)
	if f.Search != "" {
		vals[FilterSearch] = f.Search
	}
	if cats := canonicalCategories(f.Categories); len(cats) > 0 {
		vals[FilterCategories] = strings.Join(cats, ",")
	}
	if f.MinPrice != nil {
		vals[FilterMinPrice] = f.MinPrice.String()
	}
	if f.MaxPrice != nil {
		vals[FilterMaxPrice] = f.MaxPrice.String()
	}
	return vals
}

// SortedNames returns the names of the present constraints in ascending order.
func (f FilterSet) SortedNames() []string {
	vals := f.Values()
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether f and o constrain results identically.
func (f FilterSet) Equal(o FilterSet) bool {
	a, b := f.Values(), o.Values()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// ParsePrice parses an optional price bound. Blank input means absent.
func ParsePrice(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	return &d, nil
}

// SplitCategories parses a comma-joined category list, dropping blanks and "all".
func SplitCategories(raw string) []string {
	var out []string
	for _, c := range canonicalCategories([]string{raw}) {
		if c != CategoryAll {
			out = append(out, c)
		}
	}
	return out
}

// canonicalCategories splits entries on commas, since the query string joins
// categories with them, then trims, de-duplicates and sorts.
func canonicalCategories(cats []string) []string {
	if len(cats) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(cats))
	out := make([]string, 0, len(cats))
	for _, entry := range cats {
		for _, c := range strings.Split(entry, ",") {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
