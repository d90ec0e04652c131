package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/SAP-F-2025/english-school-service/internal/metrics"
)

// Fixed keys of the per-entity list regions
const (
	KeyAdminsList   = "AdminsList"
	KeyTeachersList = "TeachersList"
	KeyStudentsList = "StudentsList"
	KeyUsersList    = "UsersList"
)

// Region is a single cached list guarded by its own refill lock. Hits never
// touch the lock; on a miss at most one caller reloads while the others wait
// and then read what it stored.
type Region[T any] struct {
	key    string
	store  Store
	policy EntryPolicy
	sem    *semaphore.Weighted
	logger *slog.Logger

	// gen is bumped by every Invalidate. A refill only keeps its result
	// when no invalidation happened while it ran.
	gen atomic.Uint64
}

func NewRegion[T any](key string, store Store, policy EntryPolicy, logger *slog.Logger) *Region[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Region[T]{
		key:    key,
		store:  store,
		policy: policy,
		sem:    semaphore.NewWeighted(1),
		logger: logger.With("cache_region", key),
	}
}

func (r *Region[T]) Key() string { return r.key }

// TryGet returns the cached value without blocking on the refill lock
func (r *Region[T]) TryGet(ctx context.Context) (T, bool) {
	var out T
	if err := r.store.Get(ctx, r.key, &out); err != nil {
		if !errors.Is(err, ErrCacheNotFound) && !errors.Is(err, ErrCacheNotAvailable) {
			r.logger.WarnContext(ctx, "Cache get error, proceeding to fetch", "error", err)
		}
		return out, false
	}
	return out, true
}

// GetOrRefill returns the cached value, or loads it with refill under the
// region lock. The cache is checked again after the lock is taken so that
// callers queued behind a refill reuse its result.
func (r *Region[T]) GetOrRefill(ctx context.Context, refill func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := r.TryGet(ctx); ok {
		metrics.CacheHits.WithLabelValues(r.key).Inc()
		return v, nil
	}
	metrics.CacheMisses.WithLabelValues(r.key).Inc()

	if err := r.sem.Acquire(ctx, 1); err != nil {
		var zero T
		return zero, err
	}
	defer r.sem.Release(1)

	if v, ok := r.TryGet(ctx); ok {
		return v, nil
	}

	gen := r.gen.Load()
	v, err := refill(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	metrics.CacheRefills.WithLabelValues(r.key).Inc()

	if r.gen.Load() != gen {
		r.logger.DebugContext(ctx, "Region invalidated during refill, result not cached")
		return v, nil
	}
	if err := r.store.Set(ctx, r.key, v, r.policy); err != nil {
		r.logger.ErrorContext(ctx, "Cache set error", "error", err)
	}
	// an Invalidate may have slipped in between the check and the Set
	if r.gen.Load() != gen {
		SafeDelete(ctx, r.store, r.key)
	}
	return v, nil
}

// Invalidate drops the cached list so the next read reloads it. The
// generation moves first so an in-flight refill cannot store its older result.
func (r *Region[T]) Invalidate(ctx context.Context) {
	r.gen.Add(1)
	metrics.CacheInvalidations.WithLabelValues(r.key).Inc()
	SafeDelete(ctx, r.store, r.key)
}
