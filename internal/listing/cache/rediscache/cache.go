package rediscache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/cache"
)

// Get returns the cached envelope for req.
func (c *Cache) Get(req listing.PageRequest) (listing.PageEnvelope, bool) {
	ctx, cancel := c.callCtx()
	defer cancel()

	key := cache.Key(req)
	raw, err := c.rdb.Get(ctx, c.entryKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Warnf(ctx, "rediscache.Get: %s: %v", key, err)
		}
		c.misses.Add(1)
		return listing.PageEnvelope{}, false
	}

	var env listing.PageEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.l.Warnf(ctx, "rediscache.Get: decode %s: %v", key, err)
		c.misses.Add(1)
		return listing.PageEnvelope{}, false
	}

	c.hits.Add(1)
	c.l.Debugf(ctx, "listing cache: hit %s", key)
	return env, true
}

// Put stores env under req as the newest insertion and evicts from the
// oldest end until the cache is back within capacity. The whole update runs
// as one script, so concurrent writers never evict past capacity.
func (c *Cache) Put(req listing.PageRequest, env listing.PageEnvelope) {
	ctx, cancel := c.callCtx()
	defer cancel()

	key := cache.Key(req)
	raw, err := json.Marshal(env)
	if err != nil {
		c.l.Warnf(ctx, "rediscache.Put: encode %s: %v", key, err)
		return
	}

	evicted, err := putScript.Run(ctx, c.rdb,
		[]string{c.orderKey(), c.entryKey(key)},
		key, raw, c.ttl.Milliseconds(), c.capacity, c.entryKey(""),
	).StringSlice()
	if err != nil {
		c.l.Warnf(ctx, "rediscache.Put: %s: %v", key, err)
		return
	}

	for _, k := range evicted {
		c.evictions.Add(1)
		c.l.Debugf(ctx, "listing cache: evicted %s", k)
	}
}

// live drops order slots whose entry has expired and returns the rest,
// oldest first.
func (c *Cache) live(ctx context.Context) ([]string, error) {
	return pruneScript.Run(ctx, c.rdb, []string{c.orderKey()}, c.entryKey("")).StringSlice()
}

// Clear drops every entry in the namespace.
func (c *Cache) Clear() {
	ctx, cancel := c.callCtx()
	defer cancel()

	keys, err := c.rdb.LRange(ctx, c.orderKey(), 0, -1).Result()
	if err != nil {
		c.l.Warnf(ctx, "rediscache.Clear: %v", err)
		return
	}

	del := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		del = append(del, c.entryKey(k))
	}
	del = append(del, c.orderKey())

	if err := c.rdb.Del(ctx, del...).Err(); err != nil {
		c.l.Warnf(ctx, "rediscache.Clear: %v", err)
		return
	}
	c.l.Debugf(ctx, "listing cache: cleared")
}

// Keys returns the cached keys from oldest to newest insertion.
func (c *Cache) Keys() []string {
	ctx, cancel := c.callCtx()
	defer cancel()

	keys, err := c.live(ctx)
	if err != nil {
		c.l.Warnf(ctx, "rediscache.Keys: %v", err)
		return []string{}
	}
	return keys
}

// Metrics reports this process's hit/miss/eviction counters and the shared size.
func (c *Cache) Metrics() cache.Metrics {
	ctx, cancel := c.callCtx()
	defer cancel()

	keys, err := c.live(ctx)
	if err != nil {
		c.l.Warnf(ctx, "rediscache.Metrics: %v", err)
	}

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      len(keys),
		Capacity:  c.capacity,
	}
}
