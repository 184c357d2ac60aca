// Package latch guards keyed operations so only one runs per key at a time.
// Overlapping attempts are dropped, not queued.
package latch

import "sync"

// Set is a set of held keys
type Set struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// New creates an empty latch set
func New() *Set {
	return &Set{held: make(map[string]struct{})}
}

// TryAcquire holds key and reports true, or reports false when it is already held
func (s *Set) TryAcquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.held[key]; busy {
		return false
	}
	s.held[key] = struct{}{}
	return true
}

// Release frees key
func (s *Set) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.held, key)
}

// Held reports whether key is currently held
func (s *Set) Held(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, busy := s.held[key]
	return busy
}

// Do runs fn while holding key. It reports false without running fn when the
// key is busy. The key is released however fn returns.
func (s *Set) Do(key string, fn func() error) (bool, error) {
	if !s.TryAcquire(key) {
		return false, nil
	}
	defer s.Release(key)
	return true, fn()
}
