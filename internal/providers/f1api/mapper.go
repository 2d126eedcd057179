package f1api

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

func mapRaces(in []raceResponse) []races.Race {
	out := make([]races.Race, 0, len(in))
	for _, r := range in {
		out = append(out, races.Race{
			Round:    r.Round,
			Name:     strings.TrimSpace(r.Name),
			Location: strings.TrimSpace(r.Location),
			Date:     strings.TrimSpace(r.Date),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out
}

func mapResults(in resultsResponse) races.ResultSet {
	entries := make([]races.ResultEntry, 0, len(in.Results))
	for _, r := range in.Results {
		entries = append(entries, races.ResultEntry{
			Position: mapPosition(r.Position),
			Driver:   r.Driver,
			Team:     r.Team,
			Time:     r.Time,
			Status:   r.Status,
			Points:   r.Points,
		})
	}
	return races.ResultSet{Race: in.Race, Results: entries}
}

// mapPosition truncates float positions; null means unclassified (0).
func mapPosition(p *float64) int {
	if p == nil {
		return 0
	}
	return int(*p)
}

func mapStints(in []stintResponse) []races.TyreStint {
	out := make([]races.TyreStint, 0, len(in))
	for _, s := range in {
		out = append(out, races.TyreStint{
			Driver:      s.Driver,
			Stint:       s.Stint,
			Compound:    races.NormalizeCompound(s.Compound),
			LapsCount:   s.LapsCount,
			MeanLapTime: s.MeanLapTime,
		})
	}
	return out
}

func mapTeams(in []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(in))
	for _, t := range in {
		drivers := append([]string(nil), t.Drivers...)
		sort.Strings(drivers)
		out = append(out, teams.Team{
			Team:    t.Team,
			Wins:    t.Wins,
			Poles:   t.Poles,
			Starts:  t.Starts,
			Drivers: drivers,
		})
	}
	return out
}

func mapCareer(in careerResponse) teams.CareerStats {
	return teams.CareerStats{WDC: in.WDC, Wins: in.Wins, Podiums: in.Podiums}
}

func mapSpecs(in specsResponse) specs.Specs {
	return specs.Specs{
		Engine:     in.Engine,
		Power:      in.Power,
		Battery:    in.Battery,
		Dimensions: in.Dimensions,
	}
}
