package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisKey holds the whole trip collection under a single key, matching the
// one-key layout of the original localStorage persistence.
const redisKey = "travel-diaries:trips"

// RedisStore persists the snapshot under a single Redis key with no TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore backed by the provided client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Connect parses redisURL, creates a client, and verifies connectivity with
// a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// Load returns the stored snapshot, or ErrNotFound if the key is absent.
func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot.RedisStore.Load: %w", err)
	}
	return data, nil
}

// Save overwrites the snapshot key with data.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, redisKey, data, 0).Err(); err != nil {
		return fmt.Errorf("snapshot.RedisStore.Save: %w", err)
	}
	return nil
}
