// ABOUTME: In-memory key-value store built on patrickmn/go-cache
// ABOUTME: Non-persistent; session state lives only for the process lifetime

package memory

import (
	"context"

	"barangay-app-client/core/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements the KeyValueStore interface in memory. Entries never
// expire; they survive exactly as long as the process does, which makes this
// the default for tests and short-lived tools.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value by key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	val, found := s.cache.Get(key)
	if !found {
		return nil, interfaces.ErrKeyNotFound
	}

	stored := val.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value under the given key.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	s.cache.Set(key, stored, gocache.NoExpiration)
	return nil
}

// Delete removes a key. Absent keys are not an error.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.cache.Delete(key)
	return nil
}
