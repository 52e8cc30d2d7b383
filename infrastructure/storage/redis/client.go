// ABOUTME: Redis-backed key-value store using the go-redis client
// ABOUTME: Lets several portal tools on one host share a persisted session

package redis

import (
	"context"
	"errors"
	"time"

	"barangay-app-client/core/interfaces"
	"barangay-app-client/pkg/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements the KeyValueStore interface using Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis store instance.
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		prefix: "portal:",
	}, nil
}

// Get retrieves a value by key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, interfaces.ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value under the given key without expiration.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	s.client.Del(ctx, s.prefix+key)
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
