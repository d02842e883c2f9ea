package rediscache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"marketplace-browser/internal/listing/cache"
	pkgLog "marketplace-browser/pkg/log"
)

// Cache is a response cache kept in Redis so several processes can share it.
//
// Insertion order lives in a list and each envelope in its own key. Eviction
// follows the list strictly (oldest insertion first); reads never reorder it.
// Writes run as Lua scripts, and an entry whose TTL lapsed gives up its slot.
// Redis failures are logged and reported as misses.
type Cache struct {
	rdb      *redis.Client
	l        pkgLog.Logger
	prefix   string
	capacity int
	ttl      time.Duration
	timeout  time.Duration

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

var _ cache.Store = (*Cache)(nil)

// New creates a Redis-backed cache on rdb.
func New(l pkgLog.Logger, rdb *redis.Client, opt Options) *Cache {
	opt = opt.withDefaults()
	return &Cache{
		rdb:      rdb,
		l:        l,
		prefix:   opt.Prefix,
		capacity: opt.Capacity,
		ttl:      opt.TTL,
		timeout:  opt.Timeout,
	}
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func (c *Cache) orderKey() string {
	return c.prefix + ":order"
}

func (c *Cache) entryKey(key string) string {
	return c.prefix + ":entry:" + key
}

func (c *Cache) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}
