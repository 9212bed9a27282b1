// Package redis provides the Redis-backed rate cache. Entries are plain
// string values with a server-side TTL, so expiry needs no sweeper and
// survives process restarts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// RateCache implements ports.RateCache on top of a Redis client.
type RateCache struct {
	client redis.UniversalClient
}

// NewRateCache creates a Redis rate cache.
func NewRateCache(client redis.UniversalClient) (*RateCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RateCache{client: client}, nil
}

// Get retrieves the cached payload for key.
// Returns ports.ErrCacheMiss when the key is absent or expired.
func (c *RateCache) Get(ctx context.Context, key string) (string, error) {
	payload, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return payload, nil
}

// Set stores payload under key with the given time-to-live.
func (c *RateCache) Set(ctx context.Context, key string, payload string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
