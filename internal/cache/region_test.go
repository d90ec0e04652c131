package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTestRegion(t *testing.T) (*Region[[]item], *MemoryStore) {
	t.Helper()
	store, err := NewMemoryStore(16)
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	return NewRegion[[]item](KeyAdminsList, store, PolicyFromDuration(5), nil), store
}

func TestRegion_ConcurrentMissesRefillOnce(t *testing.T) {
	region, _ := newTestRegion(t)

	var calls int32
	release := make(chan struct{})
	refill := func(ctx context.Context) ([]item, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []item{{ID: 1, Name: "a"}}, nil
	}

	const callers = 32
	var wg sync.WaitGroup
	results := make(chan []item, callers)
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := region.GetOrRefill(context.Background(), refill)
			if err != nil {
				errs <- err
				return
			}
			results <- v
		}()
	}

	// let the callers pile up behind the first refill
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one refill, got %d", got)
	}
	n := 0
	for v := range results {
		n++
		if len(v) != 1 || v[0].Name != "a" {
			t.Fatalf("unexpected value %+v", v)
		}
	}
	if n != callers {
		t.Fatalf("expected %d results, got %d", callers, n)
	}
}

func TestRegion_HitSkipsRefill(t *testing.T) {
	region, _ := newTestRegion(t)
	calls := 0
	refill := func(ctx context.Context) ([]item, error) {
		calls++
		return []item{{ID: uint(calls)}}, nil
	}

	first, _ := region.GetOrRefill(context.Background(), refill)
	second, _ := region.GetOrRefill(context.Background(), refill)
	if calls != 1 {
		t.Fatalf("expected one refill, got %d", calls)
	}
	if first[0].ID != second[0].ID {
		t.Fatalf("expected cached value, got %v then %v", first, second)
	}

	region.Invalidate(context.Background())
	third, _ := region.GetOrRefill(context.Background(), refill)
	if calls != 2 || third[0].ID != 2 {
		t.Fatalf("expected reload after invalidate, calls=%d value=%v", calls, third)
	}
}

func TestRegion_RefillErrorNotCached(t *testing.T) {
	region, _ := newTestRegion(t)
	boom := errors.New("db down")

	_, err := region.GetOrRefill(context.Background(), func(ctx context.Context) ([]item, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected refill error, got %v", err)
	}
	if _, ok := region.TryGet(context.Background()); ok {
		t.Fatalf("failed refill must not populate the cache")
	}
}

func TestRegion_AcquireHonoursContext(t *testing.T) {
	region, _ := newTestRegion(t)

	started := make(chan struct{})
	release := make(chan struct{})
	go region.GetOrRefill(context.Background(), func(ctx context.Context) ([]item, error) {
		close(started)
		<-release
		return nil, nil
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := region.GetOrRefill(ctx, func(ctx context.Context) ([]item, error) {
		t.Error("second refill must not run")
		return nil, nil
	})
	close(release)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestPolicyFromDuration(t *testing.T) {
	p := PolicyFromDuration(3)
	if p.Sliding != 3*time.Minute || p.Absolute != 3*time.Hour || p.Weight != 1 {
		t.Fatalf("unexpected policy %+v", p)
	}
}

func TestRegion_InvalidateDuringRefillIsNotLost(t *testing.T) {
	region, _ := newTestRegion(t)
	ctx := context.Background()

	loaded := make(chan struct{})
	release := make(chan struct{})
	refill := func(ctx context.Context) ([]item, error) {
		v := []item{{ID: 1, Name: "before-create"}}
		close(loaded)
		<-release
		return v, nil
	}

	done := make(chan []item)
	go func() {
		v, err := region.GetOrRefill(ctx, refill)
		if err != nil {
			t.Errorf("GetOrRefill: %v", err)
		}
		done <- v
	}()

	<-loaded
	region.Invalidate(ctx)
	close(release)

	if v := <-done; len(v) != 1 || v[0].Name != "before-create" {
		t.Fatalf("refill caller should still get its result, got %+v", v)
	}
	if v, ok := region.TryGet(ctx); ok {
		t.Fatalf("stale refill survived invalidation: %+v", v)
	}

	fresh, err := region.GetOrRefill(ctx, func(ctx context.Context) ([]item, error) {
		return []item{{ID: 1, Name: "before-create"}, {ID: 2, Name: "created"}}, nil
	})
	if err != nil {
		t.Fatalf("GetOrRefill: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("expected reload after invalidation, got %+v", fresh)
	}
	if _, ok := region.TryGet(ctx); !ok {
		t.Fatal("expected an undisturbed refill to be cached")
	}
}
