package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore implements ports.CacheStore on top of a Redis client.
// Infrastructure errors are logged and reported as misses so a Redis outage
// slows rate lookups down instead of failing them.
type CacheStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCacheStore creates a Redis-backed cache store.
func NewCacheStore(client *redis.Client, logger *slog.Logger) *CacheStore {
	return &CacheStore{
		client: client,
		logger: logger,
	}
}

// Get returns the cached value for key. The boolean reports a hit; both an
// absent key and a Redis failure count as misses.
func (s *CacheStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed, treating as miss",
			slog.String("key", key),
			slog.Any("error", err))
		return "", false
	}

	return value, true
}

// Set stores value under key with the given time-to-live.
// A write failure is logged and dropped; the next Get simply misses.
func (s *CacheStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "cache write failed",
			slog.String("key", key),
			slog.Any("error", err))
	}
}

// Delete removes key from the cache.
func (s *CacheStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "cache delete failed",
			slog.String("key", key),
			slog.Any("error", err))
	}
}
