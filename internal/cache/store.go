package cache

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Cache errors
var (
	ErrCacheNotAvailable = fmt.Errorf("cache not available")
	ErrCacheNotFound     = fmt.Errorf("cache not found")
)

// EntryPolicy describes how long an entry lives and how much capacity it uses.
// An entry expires when it has not been read for Sliding, or once Absolute has
// elapsed since it was stored, whichever comes first.
type EntryPolicy struct {
	Sliding  time.Duration
	Absolute time.Duration
	Weight   int64
}

// noExpiry is returned by remaining for a policy with neither window set
const noExpiry = time.Duration(math.MaxInt64)

// DefaultEntryWeight is charged for every list entry against the store capacity
const DefaultEntryWeight int64 = 1

// PolicyFromDuration derives the list entry policy from the single configured
// cache duration: the same number is read as minutes for the sliding window and
// as hours for the absolute ceiling.
func PolicyFromDuration(n int) EntryPolicy {
	return EntryPolicy{
		Sliding:  time.Duration(n) * time.Minute,
		Absolute: time.Duration(n) * time.Hour,
		Weight:   DefaultEntryWeight,
	}
}

// remaining returns how long an entry may still live given when it was stored
// and when it was last read.
func (p EntryPolicy) remaining(now, storedAt, lastAccess time.Time) time.Duration {
	left := noExpiry
	if p.Absolute > 0 {
		left = storedAt.Add(p.Absolute).Sub(now)
	}
	if p.Sliding > 0 {
		if s := lastAccess.Add(p.Sliding).Sub(now); s < left {
			left = s
		}
	}
	return left
}

// Store is a byte-oriented cache backend. Get refreshes the sliding window of a
// live entry and returns ErrCacheNotFound for missing or expired keys.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, policy EntryPolicy) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
