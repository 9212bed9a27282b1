package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by RateCache.Get when no live entry exists for
// the key. A miss is an expected outcome, not a failure: callers fall
// through to the carriers and repopulate the cache.
var ErrCacheMiss = errors.New("rate cache miss")

// RateCache stores serialized rate snapshots keyed by shipment fingerprint.
// Implementations must expire entries after the TTL passed to Set. The cache
// is an optimization layer only: any error other than ErrCacheMiss may be
// logged and ignored by callers without affecting correctness.
type RateCache interface {
	// Get retrieves the cached payload for key.
	// Returns ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores payload under key with the given time-to-live.
	Set(ctx context.Context, key string, payload string, ttl time.Duration) error
}
