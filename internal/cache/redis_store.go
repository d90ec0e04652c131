package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisEnvelope carries the absolute deadline next to the payload so a hit can
// refresh the sliding TTL without ever extending past it.
type redisEnvelope struct {
	ExpiresAt time.Time       `json:"expires_at,omitempty"`
	Sliding   time.Duration   `json:"sliding,omitempty"`
	Data      json.RawMessage `json:"data"`
}

func (e redisEnvelope) ttl(now time.Time) time.Duration {
	left := noExpiry
	if !e.ExpiresAt.IsZero() {
		left = e.ExpiresAt.Sub(now)
	}
	if e.Sliding > 0 && e.Sliding < left {
		left = e.Sliding
	}
	return left
}

// RedisStore is a Store backed by redis. A nil client degrades to a cache that
// never hits. Entry weight is not tracked; redis maxmemory bounds the size.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a redis-backed store with the given key prefix
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// NewRedisClient parses a redis:// URL and verifies connectivity
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// GetCacheKey generates a cache key with prefix
func (c *RedisStore) GetCacheKey(key string) string {
	return fmt.Sprintf("%s%s", c.prefix, key)
}

// Get retrieves the entry, refreshes its sliding TTL and unmarshals it into dest
func (c *RedisStore) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	cacheKey := c.GetCacheKey(key)
	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	var env redisEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	ttl := env.ttl(c.now())
	if ttl <= 0 {
		c.client.Del(ctx, cacheKey)
		return ErrCacheNotFound
	}
	if ttl != noExpiry {
		if err := c.client.Expire(ctx, cacheKey, ttl).Err(); err != nil {
			return fmt.Errorf("cache expire error: %w", err)
		}
	}

	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

// Set marshals and stores data with a TTL of min(sliding, absolute)
func (c *RedisStore) Set(ctx context.Context, key string, value interface{}, policy EntryPolicy) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	env := redisEnvelope{Sliding: policy.Sliding, Data: data}
	if policy.Absolute > 0 {
		env.ExpiresAt = c.now().Add(policy.Absolute)
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	ttl := env.ttl(c.now())
	if ttl == noExpiry {
		ttl = 0
	}
	return c.client.Set(ctx, c.GetCacheKey(key), payload, ttl).Err()
}

// Delete removes data from cache using pipeline for multiple keys
func (c *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = c.GetCacheKey(key)
	}

	if len(cacheKeys) > 1 {
		pipe := c.client.Pipeline()
		pipe.Del(ctx, cacheKeys...)
		_, err := pipe.Exec(ctx)
		return err
	}

	return c.client.Del(ctx, cacheKeys...).Err()
}

// Ping verifies cache connectivity
func (c *RedisStore) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}
	return nil
}
