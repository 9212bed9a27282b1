// Package cache provides an in-process rate cache used when no Redis
// endpoint is configured, typically in tests and local development.
package cache

import (
	"context"
	"sync"
	"time"

	"freight/internal/core/ports"
)

// entry is one cached payload with its expiry deadline.
type entry struct {
	payload   string
	expiresAt time.Time
}

// RateCache is a mutex-guarded in-memory implementation of ports.RateCache.
// Expired entries are dropped lazily on read; there is no background sweeper.
type RateCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewRateCache creates an empty in-memory rate cache.
func NewRateCache() *RateCache {
	return &RateCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get retrieves the cached payload for key.
// Returns ports.ErrCacheMiss when the key is absent or expired.
func (c *RateCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return "", ports.ErrCacheMiss
	}

	return e.payload, nil
}

// Set stores payload under key with the given time-to-live.
func (c *RateCache) Set(_ context.Context, key string, payload string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		payload:   payload,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}
