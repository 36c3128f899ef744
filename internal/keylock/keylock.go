// Package keylock provides mutual exclusion keyed by string.
package keylock

import "sync"

// Set hands out one mutex per key. Entries are reference counted and
// removed once no goroutine holds or waits on them, so the set does not
// grow with the number of keys ever seen.
type Set struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New returns an empty Set.
func New() *Set {
	return &Set{locks: make(map[string]*entry)}
}

// Lock blocks until key is held by the caller and returns the unlock func.
func (s *Set) Lock(key string) (unlock func()) {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		e = &entry{}
		s.locks[key] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		s.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

// Len returns the number of keys currently held or awaited.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
