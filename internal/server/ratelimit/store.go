package ratelimit

import (
	"sync"
	"time"
)

// BucketStore holds token buckets keyed by client, endpoint and method.
// Implementations must be safe for concurrent use.
type BucketStore interface {
	// Get returns the bucket for key and records the access, or nil if none is stored.
	Get(key string, now time.Time) *TokenBucket
	// Put stores bucket under key unless one already exists, and returns the stored bucket.
	Put(key string, bucket *TokenBucket, now time.Time) *TokenBucket
	// Sweep drops buckets last accessed before cutoff and reports how many were removed.
	Sweep(cutoff time.Time) int
	// Len reports the number of stored buckets.
	Len() int
}

type storedBucket struct {
	bucket     *TokenBucket
	lastAccess time.Time
}

// MemoryStore is an in-process BucketStore. Idle buckets stay until the limiter sweeps them.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*storedBucket
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*storedBucket)}
}

// Get implements BucketStore.
func (s *MemoryStore) Get(key string, now time.Time) *TokenBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.buckets[key]
	if !ok {
		return nil
	}
	entry.lastAccess = now
	return entry.bucket
}

// Put implements BucketStore.
func (s *MemoryStore) Put(key string, bucket *TokenBucket, now time.Time) *TokenBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.buckets[key]; ok {
		existing.lastAccess = now
		return existing.bucket
	}
	s.buckets[key] = &storedBucket{bucket: bucket, lastAccess: now}
	return bucket
}

// Sweep implements BucketStore.
func (s *MemoryStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.buckets {
		if entry.lastAccess.Before(cutoff) {
			delete(s.buckets, key)
			removed++
		}
	}
	return removed
}

// Len implements BucketStore.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}
