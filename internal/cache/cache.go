package cache

import (
	"sync"
	"time"
)

// Store is a process-wide TTL cache mapping a query key to a value and the
// time it was stored. A lookup within the TTL window returns the value
// unchanged; an expired entry is evicted on access. Writes are
// last-writer-wins, which is fine because a value is idempotent within one
// TTL window.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value    any
	storedAt time.Time
}

// New creates a store with a fixed TTL applied to every entry.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key if its age is within the TTL.
// Expired entries are removed.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if s.now().Sub(e.storedAt) > s.ttl {
		s.mu.Lock()
		// Re-check under the write lock; another writer may have refreshed it.
		if cur, still := s.entries[key]; still && cur.storedAt.Equal(e.storedAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores a value under key with a fresh timestamp.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, storedAt: s.now()}
	s.mu.Unlock()
}

// Delete removes a key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
