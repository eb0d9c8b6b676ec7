package cache

import (
	"context"
	"time"
)

// Nop is used when Redis is disabled. Every read is a miss.
type Nop struct{}

func (Nop) Get(ctx context.Context, key string, dest interface{}) (bool, error) { return false, nil }

func (Nop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Nop) Delete(ctx context.Context, keys ...string) error { return nil }

func (Nop) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (Nop) Ping(ctx context.Context) error { return nil }
