package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
)

// instrumentedProvider wraps a DataProvider and records one attempt per call.
// It never retries; every failure is returned to the caller as-is.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewInstrumentedProvider wraps inner with per-endpoint metrics and debug logging.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (p *instrumentedProvider) FetchRaces(ctx context.Context, season int) ([]races.Race, error) {
	if p.inner == nil {
		return nil, p.unavailable(ctx, EndpointRaces)
	}
	start := time.Now()
	out, err := p.inner.FetchRaces(ctx, season)
	p.observe(ctx, EndpointRaces, start, err, slog.Int(logging.FieldSeason, season), slog.Int(logging.FieldCount, len(out)))
	return out, err
}

func (p *instrumentedProvider) FetchRaceResults(ctx context.Context, season, round int) (races.ResultSet, error) {
	if p.inner == nil {
		return races.ResultSet{}, p.unavailable(ctx, EndpointResults)
	}
	start := time.Now()
	out, err := p.inner.FetchRaceResults(ctx, season, round)
	p.observe(ctx, EndpointResults, start, err, slog.Int(logging.FieldSeason, season), slog.Int(logging.FieldRound, round))
	return out, err
}

func (p *instrumentedProvider) FetchTyreStints(ctx context.Context, season, round int) ([]races.TyreStint, error) {
	if p.inner == nil {
		return nil, p.unavailable(ctx, EndpointTyres)
	}
	start := time.Now()
	out, err := p.inner.FetchTyreStints(ctx, season, round)
	p.observe(ctx, EndpointTyres, start, err, slog.Int(logging.FieldSeason, season), slog.Int(logging.FieldRound, round))
	return out, err
}

func (p *instrumentedProvider) FetchTeamStats(ctx context.Context, season int) ([]teams.Team, error) {
	if p.inner == nil {
		return nil, p.unavailable(ctx, EndpointTeams)
	}
	start := time.Now()
	out, err := p.inner.FetchTeamStats(ctx, season)
	p.observe(ctx, EndpointTeams, start, err, slog.Int(logging.FieldSeason, season), slog.Int(logging.FieldCount, len(out)))
	return out, err
}

func (p *instrumentedProvider) FetchDriverCareer(ctx context.Context, code string) (teams.CareerStats, error) {
	if p.inner == nil {
		return teams.CareerStats{}, p.unavailable(ctx, EndpointCareer)
	}
	start := time.Now()
	out, err := p.inner.FetchDriverCareer(ctx, code)
	p.observe(ctx, EndpointCareer, start, err, slog.String(logging.FieldDriver, code))
	return out, err
}

func (p *instrumentedProvider) FetchSpecs(ctx context.Context) (specs.Specs, error) {
	if p.inner == nil {
		return specs.Specs{}, p.unavailable(ctx, EndpointSpecs)
	}
	start := time.Now()
	out, err := p.inner.FetchSpecs(ctx)
	p.observe(ctx, EndpointSpecs, start, err)
	return out, err
}

// Inner exposes the wrapped provider (primarily for cleanup in callers).
func (p *instrumentedProvider) Inner() DataProvider {
	return p.inner
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, start time.Time, err error, args ...any) {
	elapsed := time.Since(start)
	p.metrics.RecordProviderAttempt(p.name, endpoint, elapsed, err)

	args = append(args,
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if err != nil {
		args = append(args, slog.String(logging.FieldErrorKind, string(Classify(err))), slog.Any("error", err))
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider fetch failed", args...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider fetch ok", args...)
}

func (p *instrumentedProvider) unavailable(ctx context.Context, endpoint string) error {
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable", slog.String(logging.FieldEndpoint, endpoint))
	return ErrProviderUnavailable
}
