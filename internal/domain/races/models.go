package races

import "strings"

// Compound is the tyre rubber formulation used for a stint.
type Compound string

const (
	CompoundSoft         Compound = "SOFT"
	CompoundMedium       Compound = "MEDIUM"
	CompoundHard         Compound = "HARD"
	CompoundIntermediate Compound = "INTERMEDIATE"
	CompoundWet          Compound = "WET"
)

// Compounds lists the known compounds, dry to wet.
var Compounds = []Compound{CompoundSoft, CompoundMedium, CompoundHard, CompoundIntermediate, CompoundWet}

// Known reports whether c is one of the five recognized compounds.
func (c Compound) Known() bool {
	for _, known := range Compounds {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCompound maps case variants of a known compound onto it.
// Anything else is returned verbatim.
func NormalizeCompound(raw string) Compound {
	candidate := Compound(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Known() {
		return candidate
	}
	return Compound(raw)
}

// Race is one entry of a season calendar, identified by its round.
type Race struct {
	Round    int    `json:"round"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ResultEntry is a single classified (or unclassified) finisher.
type ResultEntry struct {
	Position int     `json:"position"`
	Driver   string  `json:"driver"`
	Team     string  `json:"team"`
	Time     string  `json:"time"`
	Status   string  `json:"status,omitempty"`
	Points   float64 `json:"points"`
}

// ResultSet is the classification of a race, ordered by position.
type ResultSet struct {
	Race    string        `json:"race"`
	Results []ResultEntry `json:"results"`
}

// Podium returns up to the first three entries.
func (r ResultSet) Podium() []ResultEntry {
	n := len(r.Results)
	if n > 3 {
		n = 3
	}
	return append([]ResultEntry(nil), r.Results[:n]...)
}

// TyreStint is a continuous run on one set of tyres.
type TyreStint struct {
	Driver      string   `json:"driver"`
	Stint       int      `json:"stint"`
	Compound    Compound `json:"compound"`
	LapsCount   int      `json:"laps_count"`
	MeanLapTime float64  `json:"mean_lap_time"`
}
