package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMiss indicates the requested key is not present in the store.
	ErrMiss = errors.New("cache miss")
)

// Store is the cache contract consumed by the client orchestration
// layer. Implementations must be safe for concurrent use. A lookup for
// an absent or expired key returns ErrMiss; any other error is an
// operational failure that callers are expected to treat as a miss.
type Store interface {
	// Get returns the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl. A ttl <= 0 stores nothing.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
