package dashboard

import (
	"sort"

	"github.com/preston-bernstein/f1-telemetry-service/internal/chart"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

// RaceView is everything a presenter needs to render the race page.
type RaceView struct {
	Status         string              `json:"status"`
	ShowLoading    bool                `json:"showLoading"`
	RaceName       string              `json:"raceName"`
	Round          int                 `json:"round"`
	DataRound      int                 `json:"dataRound"`
	Source         string              `json:"source"`
	Warning        string              `json:"warning,omitempty"`
	Podium         []races.ResultEntry `json:"podium"`
	Classification []races.ResultEntry `json:"classification"`
	Stints         chart.Series        `json:"stints"`
	Legend         []chart.LegendEntry `json:"legend"`
	Races          []races.Race        `json:"races"`
}

// DriverCareer pairs a roster driver with their career stats; Stats stays nil
// until the driver's fetch has merged.
type DriverCareer struct {
	Code  string             `json:"code"`
	Stats *teams.CareerStats `json:"stats"`
}

// TeamView is the team list, the selected team and its drivers' careers.
type TeamView struct {
	Teams    []teams.Team   `json:"teams"`
	Selected *teams.Team    `json:"selected"`
	Drivers  []DriverCareer `json:"drivers"`
}

// SpecField is one humanized spec row.
type SpecField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// SpecCategory is one titled group of rows.
type SpecCategory struct {
	Key    string      `json:"key"`
	Title  string      `json:"title"`
	Fields []SpecField `json:"fields"`
}

// SpecsView is the spec table ready for display.
type SpecsView struct {
	Loaded     bool           `json:"loaded"`
	Categories []SpecCategory `json:"categories"`
}

func buildSpecsView(s specs.Specs, loaded bool) SpecsView {
	view := SpecsView{Loaded: loaded, Categories: []SpecCategory{}}
	if !loaded {
		return view
	}
	for _, c := range s.Categories() {
		keys := make([]string, 0, len(c.Fields))
		for k := range c.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make([]SpecField, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, SpecField{Key: k, Label: specs.Humanize(k), Value: c.Fields[k]})
		}
		view.Categories = append(view.Categories, SpecCategory{Key: c.Key, Title: c.Title, Fields: fields})
	}
	return view
}
