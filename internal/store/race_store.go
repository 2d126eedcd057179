package store

import (
	"sort"
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

// RaceStore keeps a thread-safe snapshot of the season calendar in memory.
type RaceStore struct {
	mu    sync.RWMutex
	races map[int]races.Race
}

// NewRaceStore constructs an empty RaceStore.
func NewRaceStore() *RaceStore {
	return &RaceStore{
		races: make(map[int]races.Race),
	}
}

// ListRaces returns a copy of the calendar ordered by round.
func (s *RaceStore) ListRaces() []races.Race {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]races.Race, 0, len(s.races))
	for _, r := range s.races {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Round < result[j].Round })
	return result
}

// GetRace retrieves a race by round.
func (s *RaceStore) GetRace(round int) (races.Race, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.races[round]
	return r, ok
}

// SetRaces replaces the existing calendar with a new snapshot.
func (s *RaceStore) SetRaces(list []races.Race) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.races = make(map[int]races.Race, len(list))
	for _, r := range list {
		s.races[r.Round] = r
	}
}

// Len returns the number of races held.
func (s *RaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.races)
}
