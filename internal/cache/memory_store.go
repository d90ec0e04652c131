package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	data       []byte
	policy     EntryPolicy
	storedAt   time.Time
	lastAccess time.Time
}

// MemoryStore is an in-process Store bounded by total entry weight. Values are
// kept as JSON so callers never share memory with the cached copy.
type MemoryStore struct {
	mu       sync.Mutex
	entries  *lru.Cache[string, *memoryEntry]
	capacity int64
	used     int64
	now      func() time.Time
}

// NewMemoryStore creates a store that holds at most capacity units of weight
func NewMemoryStore(capacity int64) (*MemoryStore, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("memory cache capacity must be positive, got %d", capacity)
	}

	s := &MemoryStore{capacity: capacity, now: time.Now}
	entries, err := lru.NewWithEvict[string, *memoryEntry](int(capacity), func(_ string, e *memoryEntry) {
		// called synchronously from Add/Remove while s.mu is held
		s.used -= e.policy.Weight
	})
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	s.entries = entries
	return s, nil
}

func (s *MemoryStore) Get(_ context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	e, ok := s.entries.Get(key)
	if !ok {
		s.mu.Unlock()
		return ErrCacheNotFound
	}
	now := s.now()
	if e.policy.remaining(now, e.storedAt, e.lastAccess) <= 0 {
		s.entries.Remove(key)
		s.mu.Unlock()
		return ErrCacheNotFound
	}
	e.lastAccess = now
	data := e.data
	s.mu.Unlock()

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}, policy EntryPolicy) error {
	if policy.Weight <= 0 {
		policy.Weight = DefaultEntryWeight
	}
	if policy.Weight > s.capacity {
		return fmt.Errorf("entry weight %d exceeds cache capacity %d", policy.Weight, s.capacity)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries.Remove(key)
	s.evictExpired(now)
	for s.used+policy.Weight > s.capacity {
		if _, _, ok := s.entries.RemoveOldest(); !ok {
			break
		}
	}

	s.entries.Add(key, &memoryEntry{
		data:       data,
		policy:     policy,
		storedAt:   now,
		lastAccess: now,
	})
	s.used += policy.Weight
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		s.entries.Remove(key)
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len reports the number of live and not yet reaped entries
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}

func (s *MemoryStore) evictExpired(now time.Time) {
	for _, key := range s.entries.Keys() {
		e, ok := s.entries.Peek(key)
		if ok && e.policy.remaining(now, e.storedAt, e.lastAccess) <= 0 {
			s.entries.Remove(key)
		}
	}
}
