// Package interfaces defines the core interfaces used throughout the library.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore defines the interface for the local key-value store the
// session layer persists to. Implementations can be in-memory, SQLite-backed,
// or Redis-backed; entries have no expiration and survive for as long as the
// backing store does.
//
// Example usage:
//
//	store := someStore // implements KeyValueStore
//
//	// Persist a value
//	err := store.Set(ctx, "auth_token", []byte(token))
//
//	// Restore a value
//	data, err := store.Get(ctx, "auth_token")
//	if errors.Is(err, interfaces.ErrKeyNotFound) {
//		// nothing persisted
//	}
//
//	// Remove a value
//	err = store.Delete(ctx, "auth_token")
type KeyValueStore interface {
	// Get retrieves a value by key, ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the given key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
