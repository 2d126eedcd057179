package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

type testProvider struct {
	err   error
	calls int
}

func (t *testProvider) FetchRaces(ctx context.Context, season int) ([]races.Race, error) {
	t.calls++
	return []races.Race{{Round: 1, Name: "Bahrain Grand Prix"}}, t.err
}

func (t *testProvider) FetchRaceResults(ctx context.Context, season, round int) (races.ResultSet, error) {
	t.calls++
	return races.ResultSet{Race: "Bahrain Grand Prix"}, t.err
}

func (t *testProvider) FetchTyreStints(ctx context.Context, season, round int) ([]races.TyreStint, error) {
	t.calls++
	return nil, t.err
}

func (t *testProvider) FetchTeamStats(ctx context.Context, season int) ([]teams.Team, error) {
	t.calls++
	return nil, t.err
}

func (t *testProvider) FetchDriverCareer(ctx context.Context, code string) (teams.CareerStats, error) {
	t.calls++
	return teams.CareerStats{Wins: 1}, t.err
}

func (t *testProvider) FetchSpecs(ctx context.Context) (specs.Specs, error) {
	t.calls++
	return specs.Specs{}, t.err
}

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*testProvider)(nil)
	var _ DataProvider = (*instrumentedProvider)(nil)
}
