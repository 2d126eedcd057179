package telemetry

import (
	"fmt"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

// State is the loader's position in Idle → Loading → {LoadedLive, LoadedDemo}.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateLoadedLive State = "loaded_live"
	StateLoadedDemo State = "loaded_demo"
)

// Snapshot is a point-in-time copy of the loader state.
//
// Round is the most recently selected round; DataRound is the round the visible
// Results and Stints belong to. While loading, the previous race's data stays set.
type Snapshot struct {
	State      State
	Round      int
	DataRound  int
	Results    *races.ResultSet
	Stints     []races.TyreStint
	Err        error
	Demo       bool
	Generation uint64
}

// ShowLoadingIndicator is true only while loading before any race data was ever loaded.
func (s Snapshot) ShowLoadingIndicator() bool {
	return s.State == StateLoading && s.Results == nil
}

// Warning is the inline message shown alongside demo data.
func (s Snapshot) Warning() string {
	if !s.Demo {
		return ""
	}
	if s.Err == nil {
		return "Connection failed. Showing demo data."
	}
	return fmt.Sprintf("Connection failed: %v. Showing demo data.", s.Err)
}

// Source names where the visible data came from: "live", "demo" or "".
func (s Snapshot) Source() string {
	switch {
	case s.Results == nil:
		return ""
	case s.Demo:
		return outcomeDemo
	default:
		return outcomeLive
	}
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.Results != nil {
		results := races.ResultSet{
			Race:    s.Results.Race,
			Results: append([]races.ResultEntry(nil), s.Results.Results...),
		}
		out.Results = &results
	}
	if s.Stints != nil {
		out.Stints = append(make([]races.TyreStint, 0, len(s.Stints)), s.Stints...)
	}
	return out
}
