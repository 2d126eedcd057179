package store

import (
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

// CareerStore holds career stats keyed by driver code. Entries are only added
// between resets, and each code maps to at most one entry.
type CareerStore struct {
	mu      sync.RWMutex
	careers map[string]teams.CareerStats
}

// NewCareerStore constructs an empty CareerStore.
func NewCareerStore() *CareerStore {
	return &CareerStore{
		careers: make(map[string]teams.CareerStats),
	}
}

// Merge inserts or overwrites the entry for code.
func (s *CareerStore) Merge(code string, stats teams.CareerStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careers[code] = stats
}

// Reset drops every entry.
func (s *CareerStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careers = make(map[string]teams.CareerStats)
}

// Snapshot returns a copy of the current map.
func (s *CareerStore) Snapshot() map[string]teams.CareerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]teams.CareerStats, len(s.careers))
	for code, stats := range s.careers {
		out[code] = stats
	}
	return out
}

// Get returns the entry for code.
func (s *CareerStore) Get(code string) (teams.CareerStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.careers[code]
	return stats, ok
}
