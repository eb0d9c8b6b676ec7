package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer.
// Implementations must treat a miss as (false, nil), never as an error.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false leaves dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern such as "blog:*"
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
