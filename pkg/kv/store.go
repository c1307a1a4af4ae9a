// Package kv provides a generic thread-safe memo store.
package kv

import "sync"

// Store is a thread-safe generic key-value store intended for memoizing
// lookups that are pure functions of their key.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute runs outside the lock and may run more than once for the
// same key under contention; the first stored value wins.
func (s *Store[K, V]) GetOrCompute(key K, compute func(K) V) V {
	if val, ok := s.Get(key); ok {
		return val
	}

	val := compute(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.data[key]; ok {
		return existing
	}
	s.data[key] = val
	return val
}
