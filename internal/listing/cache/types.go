package cache

import (
	"time"

	"marketplace-browser/internal/listing"
)

// DefaultCapacity is how many pages are kept when Options leaves it unset.
const DefaultCapacity = 5

// Options configures a response cache.
type Options struct {
	Capacity int           // max entries; <= 0 uses DefaultCapacity
	TTL      time.Duration // 0 keeps entries until evicted or cleared
}

// Metrics is a point-in-time view of cache activity.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// Store is a shared response cache that can report on itself.
type Store interface {
	listing.Cache
	// Keys lists cached keys from oldest to newest insertion.
	Keys() []string
	Metrics() Metrics
}
