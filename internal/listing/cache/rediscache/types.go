package rediscache

import (
	"time"

	"marketplace-browser/internal/listing/cache"
)

const (
	DefaultPrefix  = "listing:cache"
	DefaultTimeout = 500 * time.Millisecond
)

// Options configures a Redis-backed response cache.
type Options struct {
	cache.Options
	Prefix  string        // key namespace; DefaultPrefix when empty
	Timeout time.Duration // budget for each Redis round trip; DefaultTimeout when <= 0
}

func (o Options) withDefaults() Options {
	if o.Capacity <= 0 {
		o.Capacity = cache.DefaultCapacity
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
