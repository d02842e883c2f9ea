package cache

import (
	"context"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"marketplace-browser/internal/listing"
	pkgLog "marketplace-browser/pkg/log"
)

// ResponseCache keeps the most recently inserted page envelopes.
//
// Eviction is strict FIFO by insertion: lookups use Peek and never refresh an
// entry, while a Put of an existing key counts as a new insertion. Nothing is
// invalidated automatically; entries are stale until Clear is called. It is
// safe for concurrent use, so several controllers may share one instance.
type ResponseCache struct {
	entries  *expirable.LRU[string, listing.PageEnvelope]
	capacity int
	l        pkgLog.Logger

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

var _ Store = (*ResponseCache)(nil)

// New creates a ResponseCache.
func New(l pkgLog.Logger, opt Options) *ResponseCache {
	capacity := opt.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResponseCache{
		entries:  expirable.NewLRU[string, listing.PageEnvelope](capacity, nil, opt.TTL),
		capacity: capacity,
		l:        l,
	}
}

// Get returns the cached envelope for req. A miss is never an error.
func (c *ResponseCache) Get(req listing.PageRequest) (listing.PageEnvelope, bool) {
	key := Key(req)
	env, ok := c.entries.Peek(key)
	if !ok {
		c.misses.Add(1)
		return listing.PageEnvelope{}, false
	}
	c.hits.Add(1)
	c.l.Debugf(context.Background(), "listing cache: hit %s", key)
	return env.Clone(), true
}

// Put stores env under req, evicting the oldest insertion when full.
func (c *ResponseCache) Put(req listing.PageRequest, env listing.PageEnvelope) {
	key := Key(req)
	if evicted := c.entries.Add(key, env.Clone()); evicted {
		c.evictions.Add(1)
		c.l.Debugf(context.Background(), "listing cache: evicted oldest entry to store %s", key)
	}
}

// Clear drops every entry.
func (c *ResponseCache) Clear() {
	c.entries.Purge()
	c.l.Debugf(context.Background(), "listing cache: cleared")
}

// Keys returns the cached keys from oldest to newest insertion.
func (c *ResponseCache) Keys() []string {
	return c.entries.Keys()
}

// Metrics reports hit/miss/eviction counters.
func (c *ResponseCache) Metrics() Metrics {
	return Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.entries.Len(),
		Capacity:  c.capacity,
	}
}
