package cache

import (
	"context"
	"log/slog"
)

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, store Store, keys ...string) {
	if err := store.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// NewStore builds the configured backend. A redis backend without a client
// falls back to memory so a cache outage never takes reads down.
func NewStore(backend string, sizeLimit int64, redisStore *RedisStore) (Store, error) {
	if backend == "redis" && redisStore != nil && redisStore.client != nil {
		return redisStore, nil
	}
	if backend == "redis" {
		slog.Warn("Redis cache requested but not available, using memory cache")
	}
	return NewMemoryStore(sizeLimit)
}
