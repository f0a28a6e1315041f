package storage

import (
	"sync"

	"svw.info/bingo/internal/domain"
)

// Memory is the session's set of issued card fingerprints. It only grows;
// a process that runs for a very long time keeps every fingerprint it
// ever issued.
type Memory struct {
	mu  sync.RWMutex
	fps map[domain.Fingerprint]struct{}
}

func NewMemory() *Memory {
	return &Memory{fps: make(map[domain.Fingerprint]struct{})}
}

func (s *Memory) Contains(fp domain.Fingerprint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.fps[fp]
	return ok
}

// Add records fp and reports whether it was new.
func (s *Memory) Add(fp domain.Fingerprint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fps[fp]; ok {
		return false
	}
	s.fps[fp] = struct{}{}
	return true
}

func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fps)
}
