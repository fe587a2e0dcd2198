package repository

import (
	"context"
	"time"
)

// CacheRepository defines cache operations. A nil byte slice with a nil
// error is a cache miss.
type CacheRepository interface {
	// Get retrieves a value by key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetPage retrieves a rendered location page keyed by canonical path.
	GetPage(ctx context.Context, path string) ([]byte, error)

	// SetPage stores a rendered location page keyed by canonical path.
	SetPage(ctx context.Context, path string, data []byte, ttl time.Duration) error
}
