package domain

import "context"

// Cache is a key to string value store with no consistency guarantee across
// readers. It backs the announcement and featured-speaker texts and is never
// authoritative: readers treat a missing key as the empty string.
type Cache interface {
	// Get returns the cached value, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
