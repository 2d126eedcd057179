package providers

import (
	"context"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

// RaceProvider fetches season calendars and per-race telemetry.
type RaceProvider interface {
	FetchRaces(ctx context.Context, season int) ([]races.Race, error)
	FetchRaceResults(ctx context.Context, season, round int) (races.ResultSet, error)
	FetchTyreStints(ctx context.Context, season, round int) ([]races.TyreStint, error)
}

// TeamProvider fetches team aggregates and per-driver career stats.
type TeamProvider interface {
	FetchTeamStats(ctx context.Context, season int) ([]teams.Team, error)
	FetchDriverCareer(ctx context.Context, code string) (teams.CareerStats, error)
}

// SpecsProvider fetches the static car specification table.
type SpecsProvider interface {
	FetchSpecs(ctx context.Context) (specs.Specs, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	RaceProvider
	TeamProvider
	SpecsProvider
}

// Endpoint names used in logs, metrics and errors.
const (
	EndpointRaces   = "races"
	EndpointResults = "results"
	EndpointTyres   = "tyres"
	EndpointTeams   = "team-stats"
	EndpointCareer  = "career"
	EndpointSpecs   = "specs"
)
