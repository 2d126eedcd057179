// Package render draws dashboard views as terminal tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/preston-bernstein/f1-telemetry-service/internal/dashboard"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

const (
	barGlyph  = "█"
	barMaxLen = 40
	noValue   = "-"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

// Races renders the race catalog, marking the selected round.
func Races(w io.Writer, list []races.Race, selected int) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No races available.")
		return
	}
	t := newTable(w, "Races")
	t.AppendHeader(table.Row{"", "Round", "Race", "Location", "Date"})
	for _, race := range list {
		marker := ""
		if race.Round == selected {
			marker = "*"
		}
		t.AppendRow(table.Row{marker, race.Round, race.Name, orDash(race.Location), orDash(race.Date)})
	}
	t.Render()
}

// Race renders the race header, podium, classification, stint chart and legend.
func Race(w io.Writer, view dashboard.RaceView) {
	if view.ShowLoading {
		fmt.Fprintf(w, "Loading round %d...\n", view.Round)
		return
	}
	if view.Warning != "" {
		fmt.Fprintln(w, text.FgYellow.Sprint(view.Warning))
	}
	if view.RaceName == "" {
		fmt.Fprintf(w, "No race data for round %d.\n", view.Round)
		return
	}

	title := fmt.Sprintf("%s (round %d, %s)", view.RaceName, view.Round, view.Source)
	if view.Status == "loading" {
		title += " [refreshing]"
	}

	podium := newTable(w, title+" - Podium")
	podium.AppendHeader(table.Row{"Pos", "Driver", "Team"})
	for _, entry := range view.Podium {
		podium.AppendRow(table.Row{entry.Position, entry.Driver, entry.Team})
	}
	podium.Render()

	classification := newTable(w, "Classification")
	classification.AppendHeader(table.Row{"Pos", "Driver", "Team", "Time", "Points", "Status"})
	for _, entry := range view.Classification {
		classification.AppendRow(table.Row{
			position(entry.Position), entry.Driver, entry.Team, orDash(entry.Time), entry.Points, orDash(entry.Status),
		})
	}
	classification.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
	})
	classification.Render()

	Stints(w, view)
}

// Stints renders the tyre stint chart as horizontal bars scaled to the longest stint.
func Stints(w io.Writer, view dashboard.RaceView) {
	if view.Stints.NoData {
		fmt.Fprintln(w, "No tyre data.")
		return
	}
	longest := 0
	for _, p := range view.Stints.Points {
		if p.Laps > longest {
			longest = p.Laps
		}
	}

	t := newTable(w, "Tyre Stints")
	t.AppendHeader(table.Row{"Stint", "Compound", "Laps", ""})
	for _, p := range view.Stints.Points {
		t.AppendRow(table.Row{p.Label, p.Compound, p.Laps, bar(p.Laps, longest)})
	}
	t.Render()

	legend := make([]string, 0, len(view.Legend))
	for _, entry := range view.Legend {
		legend = append(legend, fmt.Sprintf("%s %s", entry.Compound, entry.Color))
	}
	fmt.Fprintf(w, "Legend: %s\n", strings.Join(legend, ", "))
}

// Teams renders the team list and the selected team's driver careers.
func Teams(w io.Writer, view dashboard.TeamView) {
	if len(view.Teams) == 0 {
		fmt.Fprintln(w, "No teams available.")
		return
	}
	selected := ""
	if view.Selected != nil {
		selected = view.Selected.Team
	}

	teams := newTable(w, "Teams")
	teams.AppendHeader(table.Row{"", "Team", "Wins", "Poles", "Starts", "Drivers"})
	for _, team := range view.Teams {
		marker := ""
		if team.Team == selected {
			marker = "*"
		}
		teams.AppendRow(table.Row{marker, team.Team, team.Wins, team.Poles, team.Starts, strings.Join(team.Drivers, ", ")})
	}
	teams.Render()

	if view.Selected == nil {
		return
	}
	careers := newTable(w, selected+" - Driver Careers")
	careers.AppendHeader(table.Row{"Driver", "WDC", "Wins", "Podiums"})
	for _, driver := range view.Drivers {
		if driver.Stats == nil {
			careers.AppendRow(table.Row{driver.Code, "...", "...", "..."})
			continue
		}
		careers.AppendRow(table.Row{driver.Code, driver.Stats.WDC, driver.Stats.Wins, driver.Stats.Podiums})
	}
	careers.Render()
}

// Specs renders one table per spec category.
func Specs(w io.Writer, view dashboard.SpecsView) {
	if !view.Loaded {
		fmt.Fprintln(w, "Car specs unavailable.")
		return
	}
	for _, category := range view.Categories {
		t := newTable(w, category.Title)
		for _, field := range category.Fields {
			t.AppendRow(table.Row{field.Label, field.Value})
		}
		t.Render()
	}
}

func bar(laps, longest int) string {
	if longest <= 0 || laps <= 0 {
		return ""
	}
	n := laps * barMaxLen / longest
	if n == 0 {
		n = 1
	}
	return strings.Repeat(barGlyph, n)
}

func position(pos int) string {
	if pos <= 0 {
		return noValue
	}
	return fmt.Sprint(pos)
}

func orDash(s string) string {
	if s == "" {
		return noValue
	}
	return s
}
