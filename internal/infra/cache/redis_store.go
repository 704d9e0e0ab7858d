package cache

import (
	"context"
	"time"

	"herdwatch/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// redisStore implements the service.CacheStore interface.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client) service.CacheStore {
	return &redisStore{
		client: client,
	}
}

// Get retrieves a cached value; the second return is false on a miss.
func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to get cache key")
	}

	return value, true, nil
}

// Set stores a value with a TTL.
func (s *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache key")
	}

	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache keys")
	}

	return nil
}
