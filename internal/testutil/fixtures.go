package testutil

import (
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
	"github.com/preston-bernstein/f1-telemetry-service/internal/teststubs"
)

// SampleRace returns a race fixture for round.
func SampleRace(round int, name string) races.Race {
	return races.Race{Round: round, Name: name, Location: "Sakhir", Date: "2024-03-02"}
}

// SampleResults returns a four-driver classification for race.
func SampleResults(race string) races.ResultSet {
	return races.ResultSet{Race: race, Results: []races.ResultEntry{
		{Position: 1, Driver: "VER", Team: "Red Bull Racing", Time: "1:33:56.736", Points: 26, Status: "Finished"},
		{Position: 2, Driver: "PER", Team: "Red Bull Racing", Points: 18, Status: "Finished"},
		{Position: 3, Driver: "SAI", Team: "Ferrari", Points: 15, Status: "Finished"},
		{Position: 4, Driver: "LEC", Team: "Ferrari", Points: 12, Status: "Finished"},
	}}
}

// SampleGrid returns a stub provider with two races, two teams, careers and specs.
func SampleGrid() *teststubs.StubProvider {
	return &teststubs.StubProvider{
		Races: []races.Race{SampleRace(1, "Bahrain Grand Prix"), SampleRace(2, "Saudi Arabian Grand Prix")},
		Results: map[int]races.ResultSet{
			1: SampleResults("Bahrain Grand Prix"),
			2: SampleResults("Saudi Arabian Grand Prix"),
		},
		Stints: map[int][]races.TyreStint{
			1: {
				{Driver: "VER", Stint: 1, Compound: races.CompoundSoft, LapsCount: 15},
				{Driver: "VER", Stint: 2, Compound: races.CompoundHard, LapsCount: 42},
			},
			2: {{Driver: "PER", Stint: 1, Compound: races.CompoundMedium, LapsCount: 20}},
		},
		Teams: []teams.Team{
			{Team: "Red Bull Racing", Wins: 21, Poles: 14, Starts: 44, Drivers: []string{"PER", "VER"}},
			{Team: "Ferrari", Wins: 1, Poles: 5, Starts: 44, Drivers: []string{"LEC", "SAI"}},
		},
		Careers: map[string]teams.CareerStats{
			"VER": {WDC: 3, Wins: 54, Podiums: 98},
			"PER": {Wins: 6, Podiums: 35},
			"LEC": {Wins: 5, Podiums: 30},
			"SAI": {Wins: 2, Podiums: 18},
		},
		Specs: specs.Specs{
			Engine:     map[string]string{"type": "1.6L V6 Turbo Hybrid", "rpm_limit": "15,000 RPM"},
			Dimensions: map[string]string{"min_weight": "798 kg"},
		},
	}
}
