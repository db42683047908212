// Package repository defines persistence boundaries for the domain.
package repository

import "context"

// KeyValueStore is a small string key-value persistence backend.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
