// Package cache provides byte-level caching for built layout plans.
//
// The build command hashes the layout config and stores the serialized plan
// under that key, so repeated builds of an unchanged store are free. Three
// backends share the [Cache] interface: a file cache for CLI usage, a redis
// cache for multi-instance deployments, and a null cache for disabling
// caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
