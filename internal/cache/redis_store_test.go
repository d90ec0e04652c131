package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis, *fakeClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, "list:")
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store.now = clock.Now
	return store, mr, clock
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr, _ := newTestRedisStore(t)

	if err := store.Set(ctx, KeyUsersList, []item{{ID: 1, Name: "alice"}}, PolicyFromDuration(5)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists("list:UsersList") {
		t.Fatalf("expected prefixed key in redis")
	}
	if ttl := mr.TTL("list:UsersList"); ttl != 5*time.Minute {
		t.Fatalf("expected ttl of sliding window, got %s", ttl)
	}

	var got []item
	if err := store.Get(ctx, KeyUsersList, &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 || got[0].Name != "alice" {
		t.Fatalf("unexpected value %+v", got)
	}

	if err := store.Delete(ctx, KeyUsersList); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Get(ctx, KeyUsersList, &got); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestRedisStore_SlidingRefreshCappedByAbsolute(t *testing.T) {
	ctx := context.Background()
	store, mr, clock := newTestRedisStore(t)
	policy := EntryPolicy{Sliding: time.Minute, Absolute: 90 * time.Second, Weight: 1}

	if err := store.Set(ctx, "k", "v", policy); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock.Advance(50 * time.Second)
	mr.FastForward(50 * time.Second)
	var got string
	if err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("expected hit, got %v", err)
	}
	if ttl := mr.TTL("list:k"); ttl != 40*time.Second {
		t.Fatalf("expected ttl capped at the absolute deadline, got %s", ttl)
	}

	clock.Advance(41 * time.Second)
	mr.FastForward(41 * time.Second)
	if err := store.Get(ctx, "k", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected expiry at the absolute deadline, got %v", err)
	}
}

func TestRedisStore_NilClientDegrades(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(nil, "list:")

	if err := store.Set(ctx, "k", "v", PolicyFromDuration(1)); err != nil {
		t.Fatalf("expected Set to be a no-op, got %v", err)
	}
	var got string
	if err := store.Get(ctx, "k", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Fatalf("expected ErrCacheNotAvailable, got %v", err)
	}
	if err := store.Ping(ctx); !errors.Is(err, ErrCacheNotAvailable) {
		t.Fatalf("expected ErrCacheNotAvailable from Ping, got %v", err)
	}

	fallback, err := NewStore("redis", 8, store)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, ok := fallback.(*MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", fallback)
	}
}
