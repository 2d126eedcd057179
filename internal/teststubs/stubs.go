package teststubs

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

// StubProvider is a controllable test double for providers.DataProvider.
//
// Each call is keyed ("races", "results/3", "tyres/3", "team-stats",
// "career/VER", "specs"). Hold(key) makes calls with that key block until
// Release(key); held calls ignore context cancellation so tests can deliver
// results after a selection was superseded.
type StubProvider struct {
	Races      []races.Race
	RacesErr   error
	Results    map[int]races.ResultSet
	ResultsErr map[int]error
	Stints     map[int][]races.TyreStint
	StintsErr  map[int]error
	Teams      []teams.Team
	TeamsErr   error
	Careers    map[string]teams.CareerStats
	CareerErr  map[string]error
	Specs      specs.Specs
	SpecsErr   error

	mu    sync.Mutex
	gates map[string]chan struct{}
	calls map[string]int
}

// Hold makes subsequent calls for key block until Release.
func (s *StubProvider) Hold(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gates == nil {
		s.gates = make(map[string]chan struct{})
	}
	if _, ok := s.gates[key]; !ok {
		s.gates[key] = make(chan struct{})
	}
}

// Release unblocks every call waiting on key. Releasing an unheld key is a no-op.
func (s *StubProvider) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gate, ok := s.gates[key]; ok {
		close(gate)
		delete(s.gates, key)
	}
}

// Calls returns how many times key was requested.
func (s *StubProvider) Calls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

func (s *StubProvider) enter(key string) {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[key]++
	gate := s.gates[key]
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (s *StubProvider) FetchRaces(ctx context.Context, season int) ([]races.Race, error) {
	s.enter("races")
	if s.RacesErr != nil {
		return nil, s.RacesErr
	}
	return append([]races.Race(nil), s.Races...), nil
}

func (s *StubProvider) FetchRaceResults(ctx context.Context, season, round int) (races.ResultSet, error) {
	s.enter(fmt.Sprintf("results/%d", round))
	if err := s.ResultsErr[round]; err != nil {
		return races.ResultSet{}, err
	}
	return s.Results[round], nil
}

func (s *StubProvider) FetchTyreStints(ctx context.Context, season, round int) ([]races.TyreStint, error) {
	s.enter(fmt.Sprintf("tyres/%d", round))
	if err := s.StintsErr[round]; err != nil {
		return nil, err
	}
	stints, ok := s.Stints[round]
	if !ok {
		return []races.TyreStint{}, nil
	}
	return append([]races.TyreStint(nil), stints...), nil
}

func (s *StubProvider) FetchTeamStats(ctx context.Context, season int) ([]teams.Team, error) {
	s.enter("team-stats")
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	return append([]teams.Team(nil), s.Teams...), nil
}

func (s *StubProvider) FetchDriverCareer(ctx context.Context, code string) (teams.CareerStats, error) {
	code = strings.ToUpper(code)
	s.enter("career/" + code)
	if err := s.CareerErr[code]; err != nil {
		return teams.CareerStats{}, err
	}
	return s.Careers[code], nil
}

func (s *StubProvider) FetchSpecs(ctx context.Context) (specs.Specs, error) {
	s.enter("specs")
	if s.SpecsErr != nil {
		return specs.Specs{}, s.SpecsErr
	}
	return s.Specs, nil
}
