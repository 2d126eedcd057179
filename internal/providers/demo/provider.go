package demo

import (
	"context"
	"strings"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
)

// Provider serves a Dataset through the provider interface for fully offline runs.
// Every round resolves to the same demo race.
type Provider struct {
	data Dataset
}

// New creates a provider over ds.
func New(ds Dataset) *Provider {
	return &Provider{data: ds}
}

// FetchRaces returns the demo calendar.
func (p *Provider) FetchRaces(ctx context.Context, season int) ([]races.Race, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]races.Race(nil), p.data.Races...), nil
}

// FetchRaceResults returns the demo classification regardless of round.
func (p *Provider) FetchRaceResults(ctx context.Context, season, round int) (races.ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return races.ResultSet{}, err
	}
	results, _ := p.data.RaceData()
	return results, nil
}

// FetchTyreStints returns the demo stints regardless of round.
func (p *Provider) FetchTyreStints(ctx context.Context, season, round int) ([]races.TyreStint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, stints := p.data.RaceData()
	return stints, nil
}

// FetchTeamStats returns the demo teams.
func (p *Provider) FetchTeamStats(ctx context.Context, season int) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(p.data.Teams))
	for _, t := range p.data.Teams {
		t.Drivers = append([]string(nil), t.Drivers...)
		out = append(out, t)
	}
	return out, nil
}

// FetchDriverCareer returns zeroed stats for drivers missing from the dataset.
func (p *Provider) FetchDriverCareer(ctx context.Context, code string) (teams.CareerStats, error) {
	if err := ctx.Err(); err != nil {
		return teams.CareerStats{}, err
	}
	return p.data.Careers[strings.ToUpper(code)], nil
}

// FetchSpecs returns the demo spec table.
func (p *Provider) FetchSpecs(ctx context.Context) (specs.Specs, error) {
	if err := ctx.Err(); err != nil {
		return specs.Specs{}, err
	}
	return specs.Specs{
		Engine:     copyFields(p.data.Specs.Engine),
		Power:      copyFields(p.data.Specs.Power),
		Battery:    copyFields(p.data.Specs.Battery),
		Dimensions: copyFields(p.data.Specs.Dimensions),
	}, nil
}

func copyFields(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
