package fakeservice

import (
	"sync"

	"github.com/statusprobe/backend-contract-tests/servicedef"
)

// Store keeps status checks in memory, in insertion order.
type Store struct {
	mu     sync.RWMutex
	checks []servicedef.StatusCheck
}

func NewStore() *Store {
	return &Store{checks: make([]servicedef.StatusCheck, 0, 64)}
}

func (s *Store) Add(c servicedef.StatusCheck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, c)
}

func (s *Store) List() []servicedef.StatusCheck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]servicedef.StatusCheck, 0, len(s.checks)), s.checks...)
}
