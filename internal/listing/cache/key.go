package cache

import (
	"strconv"
	"strings"

	"marketplace-browser/internal/listing"
)

// Key builds the canonical cache key of req: page, limit, then every present
// filter as name=value in ascending name order. Two filter sets with the same
// effective constraints produce the same key regardless of how they were built.
func Key(req listing.PageRequest) string {
	var sb strings.Builder
	sb.WriteString("page=")
	sb.WriteString(strconv.Itoa(req.Page))
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(req.Limit))

	vals := req.Filters.Values()
	for _, name := range req.Filters.SortedNames() {
		sb.WriteByte('&')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(vals[name]))
	}
	return sb.String()
}
