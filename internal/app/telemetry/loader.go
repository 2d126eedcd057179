package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/policy"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/demo"
)

const (
	component   = "telemetry"
	outcomeLive = "live"
	outcomeDemo = "demo"
)

// DemoSource supplies the substitute results and stints used on any live failure.
type DemoSource interface {
	RaceData() (races.ResultSet, []races.TyreStint)
}

// Options configures a Loader.
type Options struct {
	Season  int
	Demo    DemoSource
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Loader fetches results and tyre stints for the selected round as one unit.
// A load is either fully live or fully demo, and only the newest selection
// may change the visible state.
type Loader struct {
	provider providers.RaceProvider
	demo     DemoSource
	season   int
	policy   policy.Policy
	logger   *slog.Logger
	metrics  *metrics.Recorder

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot
	closed bool
	wg     sync.WaitGroup
}

// New constructs a Loader in the Idle state.
func New(provider providers.RaceProvider, opts Options) *Loader {
	source := opts.Demo
	if source == nil {
		source = demo.Default()
	}
	return &Loader{
		provider: provider,
		demo:     source,
		season:   opts.Season,
		policy:   policy.New(policy.FallbackToDemo, component, opts.Logger, opts.Metrics),
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		snap:     Snapshot{State: StateIdle},
	}
}

// Select starts loading round and supersedes any load in flight. The returned
// channel closes once this load has settled and been applied or discarded.
func (l *Loader) Select(ctx context.Context, round int) <-chan struct{} {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		done := make(chan struct{})
		close(done)
		return done
	}
	l.gen++
	gen := l.gen
	if l.cancel != nil {
		l.cancel()
	}
	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	l.cancel = cancel
	l.snap.State = StateLoading
	l.snap.Round = round
	l.snap.Generation = gen
	l.wg.Add(1)
	l.mu.Unlock()

	logging.Debug(logging.FromContext(ctx, l.logger), "race telemetry loading",
		slog.Int(logging.FieldRound, round),
		slog.Uint64(logging.FieldGeneration, gen),
	)

	done := make(chan struct{})
	go func() {
		defer l.wg.Done()
		defer close(done)
		defer cancel()
		l.run(loadCtx, gen, round)
	}()
	return done
}

// Load selects round and waits for it to settle (or ctx to end), returning the
// snapshot current at that point.
func (l *Loader) Load(ctx context.Context, round int) Snapshot {
	done := l.Select(ctx, round)
	select {
	case <-done:
	case <-ctx.Done():
	}
	return l.Snapshot()
}

// Snapshot returns a copy of the current state.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap.clone()
}

// Close cancels any load in flight, discards its outcome and waits for it to
// finish. Later selections are ignored.
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	l.gen++
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()
	l.wg.Wait()
}

func (l *Loader) run(ctx context.Context, gen uint64, round int) {
	start := time.Now()
	results, stints, err := l.fetchPair(ctx, round)
	l.settle(ctx, gen, round, results, stints, err, time.Since(start))
}

// fetchPair issues both requests concurrently and joins them. The first error
// cancels the sibling and is the one reported.
func (l *Loader) fetchPair(ctx context.Context, round int) (races.ResultSet, []races.TyreStint, error) {
	var (
		results races.ResultSet
		stints  []races.TyreStint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = l.provider.FetchRaceResults(gctx, l.season, round)
		return err
	})
	g.Go(func() error {
		var err error
		stints, err = l.provider.FetchTyreStints(gctx, l.season, round)
		return err
	})
	if err := g.Wait(); err != nil {
		return races.ResultSet{}, nil, err
	}
	if stints == nil {
		stints = []races.TyreStint{}
	}
	return results, stints, nil
}

func (l *Loader) settle(ctx context.Context, gen uint64, round int, results races.ResultSet, stints []races.TyreStint, err error, elapsed time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	logger := logging.FromContext(ctx, l.logger)
	if gen != l.gen {
		l.metrics.RecordStaleDiscard(component)
		logging.Debug(logger, "discarding stale race telemetry",
			slog.Int(logging.FieldRound, round),
			slog.Uint64(logging.FieldGeneration, gen),
			slog.Uint64("current_generation", l.gen),
		)
		return
	}

	if err != nil {
		demoResults, demoStints := l.demo.RaceData()
		l.snap = Snapshot{
			State:      StateLoadedDemo,
			Round:      round,
			DataRound:  round,
			Results:    &demoResults,
			Stints:     demoStints,
			Err:        err,
			Demo:       true,
			Generation: gen,
		}
		l.policy.Handle(ctx, err, slog.Int(logging.FieldRound, round))
		l.metrics.RecordTelemetryLoad(outcomeDemo, elapsed)
		return
	}

	l.snap = Snapshot{
		State:      StateLoadedLive,
		Round:      round,
		DataRound:  round,
		Results:    &results,
		Stints:     stints,
		Generation: gen,
	}
	l.metrics.RecordTelemetryLoad(outcomeLive, elapsed)
	logging.Info(logger, "race telemetry loaded",
		slog.Int(logging.FieldRound, round),
		slog.Int(logging.FieldCount, len(stints)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}
