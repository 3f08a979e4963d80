// Package cache holds the read-through response cache used in front of the
// GET endpoints. Entries expire after a fixed TTL; backends are pluggable.
package cache

import (
	"context"
	"fmt"

	"restaurant-api/config"

	"github.com/redis/go-redis/v9"
)

// Store is a byte-oriented key/value store with per-entry expiry.
type Store interface {
	// Get returns the value stored under key. A missing or expired key is
	// reported with ok == false and a nil error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key for the store's TTL.
	Set(ctx context.Context, key string, value []byte) error
	// Purge drops every entry in the store's namespace.
	Purge(ctx context.Context) error
	Close() error
}

// Runner is implemented by stores that need a background loop. Run blocks
// until ctx is done.
type Runner interface {
	Run(ctx context.Context) error
}

// New builds the Store selected by cfg.Backend. rdb is only used by the redis
// backend and may be nil otherwise.
func New(cfg config.CacheConfig, rdb *redis.Client) (Store, error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("cache: redis backend selected without a redis client")
		}
		return NewRedisStore(rdb, cfg.Prefix, cfg.TTL), nil
	case config.CacheBackendMemory:
		return NewMemoryStore(cfg.TTL, cfg.Capacity), nil
	case config.CacheBackendSturdyc:
		return NewSturdyStore(cfg.Prefix, cfg.TTL, cfg.Capacity), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}
