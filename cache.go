package ravy

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores raw successful GET response bodies keyed by request URL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached body for a key. The second return value is
	// false on a miss; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a body under a key for ttl. A non-positive ttl means the
	// entry never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache is a Cache backed by Redis, for bot fleets that share lookup
// results between processes.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a RedisCache on an existing Redis client. All keys
// are stored under the given prefix; an empty prefix defaults to "ravy:".
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "ravy:"
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
	}
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
