package chart

import (
	"fmt"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

// Point is one bar of the stint chart.
type Point struct {
	Label    string         `json:"label"`
	Laps     int            `json:"laps"`
	Compound races.Compound `json:"compound"`
	Driver   string         `json:"driver"`
	Color    string         `json:"color"`
}

// Series is the renderable stint chart. NoData tells callers to show an explicit
// empty state instead of an empty frame.
type Series struct {
	Points []Point `json:"points"`
	NoData bool    `json:"noData"`
}

// BuildStintSeries filters stints to the roster and maps them to chart points,
// keeping input order. A nil input means nothing was fetched yet.
func BuildStintSeries(stints []races.TyreStint, roster Roster) Series {
	if stints == nil {
		return Series{Points: []Point{}, NoData: true}
	}
	points := make([]Point, 0, len(stints))
	for _, s := range stints {
		if !roster.Contains(s.Driver) {
			continue
		}
		points = append(points, Point{
			Label:    fmt.Sprintf("%s S%d", s.Driver, s.Stint),
			Laps:     s.LapsCount,
			Compound: s.Compound,
			Driver:   s.Driver,
			Color:    ColorFor(s.Compound),
		})
	}
	return Series{Points: points, NoData: len(points) == 0}
}
