package store

import (
	"testing"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

func TestRaceStoreSetAndGet(t *testing.T) {
	s := NewRaceStore()

	s.SetRaces([]races.Race{
		{Round: 2, Name: "Saudi Arabian Grand Prix"},
		{Round: 1, Name: "Bahrain Grand Prix"},
	})

	list := s.ListRaces()
	if len(list) != 2 {
		t.Fatalf("expected 2 races, got %d", len(list))
	}
	if list[0].Round != 1 || list[1].Round != 2 {
		t.Fatalf("expected races ordered by round, got %+v", list)
	}

	race, ok := s.GetRace(2)
	if !ok {
		t.Fatalf("expected to find round 2")
	}
	if race.Name != "Saudi Arabian Grand Prix" {
		t.Fatalf("unexpected race %s", race.Name)
	}
}

func TestRaceStoreGetNotFound(t *testing.T) {
	s := NewRaceStore()
	if _, ok := s.GetRace(9); ok {
		t.Fatalf("expected missing round to return false")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestRaceStoreSetReplacesSnapshot(t *testing.T) {
	s := NewRaceStore()
	s.SetRaces([]races.Race{{Round: 1}})

	s.SetRaces([]races.Race{{Round: 3}})

	if _, ok := s.GetRace(1); ok {
		t.Fatalf("expected old round to be removed after replace")
	}
	if _, ok := s.GetRace(3); !ok {
		t.Fatalf("expected new round to be present")
	}
}

func TestRaceStoreListReturnsCopy(t *testing.T) {
	s := NewRaceStore()
	s.SetRaces([]races.Race{{Round: 1, Name: "original"}})

	list := s.ListRaces()
	list[0].Name = "mutated"

	race, _ := s.GetRace(1)
	if race.Name != "original" {
		t.Fatalf("expected store to remain unchanged, got %s", race.Name)
	}
}
