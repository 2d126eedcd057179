package roster

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/policy"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
)

const (
	teamsComponent   = "teams"
	careersComponent = "careers"
)

// ErrUnknownTeam is returned when selecting a team that is not in the list.
var ErrUnknownTeam = errors.New("unknown team")

// CareerStore holds the per-driver career map for the selected team.
type CareerStore interface {
	Merge(code string, stats teams.CareerStats)
	Reset()
	Snapshot() map[string]teams.CareerStats
	Get(code string) (teams.CareerStats, bool)
}

// Options configures a Loader.
type Options struct {
	Season  int
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Loader holds the team list and fans out one career fetch per driver of the
// selected team, merging each success as it arrives.
type Loader struct {
	provider     providers.TeamProvider
	careers      CareerStore
	season       int
	teamPolicy   policy.Policy
	careerPolicy policy.Policy
	logger       *slog.Logger
	metrics      *metrics.Recorder

	mu       sync.Mutex
	teams    []teams.Team
	selected *teams.Team
	gen      uint64
	cancel   context.CancelFunc
	settled  chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

// New constructs a Loader with an empty team list.
func New(provider providers.TeamProvider, careers CareerStore, opts Options) *Loader {
	settled := make(chan struct{})
	close(settled)
	return &Loader{
		provider:     provider,
		careers:      careers,
		season:       opts.Season,
		teamPolicy:   policy.New(policy.LogAndLeaveEmpty, teamsComponent, opts.Logger, opts.Metrics),
		careerPolicy: policy.New(policy.BestEffortMerge, careersComponent, opts.Logger, opts.Metrics),
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		settled:      settled,
	}
}

// Init fetches the team list once and selects the first team. On failure the
// list stays empty and the error is returned for the caller to log.
func (l *Loader) Init(ctx context.Context) error {
	list, err := l.provider.FetchTeamStats(ctx, l.season)
	if err != nil {
		l.teamPolicy.Handle(ctx, err, slog.Int(logging.FieldSeason, l.season))
		return err
	}

	l.mu.Lock()
	l.teams = cloneTeams(list)
	l.mu.Unlock()

	logging.Info(l.logger, "team list loaded",
		slog.Int(logging.FieldSeason, l.season),
		slog.Int(logging.FieldCount, len(list)),
	)
	if len(list) == 0 {
		return nil
	}
	_, err = l.SelectTeam(ctx, list[0].Team)
	return err
}

// SelectTeam makes name the selected team, resets the career map and starts one
// fetch per driver. The channel closes when every fetch of this selection settled.
func (l *Loader) SelectTeam(ctx context.Context, name string) (<-chan struct{}, error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return l.settledLocked(), nil
	}
	team, ok := l.findLocked(name)
	if !ok {
		l.mu.Unlock()
		return nil, ErrUnknownTeam
	}

	l.gen++
	gen := l.gen
	if l.cancel != nil {
		l.cancel()
	}
	fanCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	l.cancel = cancel
	l.selected = &team
	l.careers.Reset()

	done := make(chan struct{})
	l.settled = done
	drivers := append([]string(nil), team.Drivers...)
	l.wg.Add(len(drivers) + 1)
	l.mu.Unlock()

	logging.Debug(logging.FromContext(ctx, l.logger), "team selected",
		slog.String(logging.FieldTeam, team.Team),
		slog.Int(logging.FieldCount, len(drivers)),
		slog.Uint64(logging.FieldGeneration, gen),
	)

	var pending sync.WaitGroup
	pending.Add(len(drivers))
	for _, code := range drivers {
		go func(code string) {
			defer l.wg.Done()
			defer pending.Done()
			l.fetchCareer(fanCtx, gen, code)
		}(code)
	}
	go func() {
		defer l.wg.Done()
		pending.Wait()
		cancel()
		close(done)
	}()
	return done, nil
}

// Settled returns the channel of the latest team selection.
func (l *Loader) Settled() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settledLocked()
}

// Teams returns a copy of the team list.
func (l *Loader) Teams() []teams.Team {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneTeams(l.teams)
}

// Selected returns the selected team, if any.
func (l *Loader) Selected() (teams.Team, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.selected == nil {
		return teams.Team{}, false
	}
	team := *l.selected
	team.Drivers = append([]string(nil), team.Drivers...)
	return team, true
}

// Careers returns a copy of the career map for the selected team.
func (l *Loader) Careers() map[string]teams.CareerStats {
	return l.careers.Snapshot()
}

// Close cancels in-flight fetches, drops their results and waits for them.
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

// fetchCareer merges against whatever map is current when the result arrives.
// A result from a superseded selection only fills a gap for a driver of the
// currently selected team.
func (l *Loader) fetchCareer(ctx context.Context, gen uint64, code string) {
	stats, err := l.provider.FetchDriverCareer(ctx, code)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.careerPolicy.Handle(ctx, err,
			slog.String(logging.FieldDriver, code),
			slog.Uint64(logging.FieldGeneration, gen),
		)
		return
	}
	if gen != l.gen {
		if l.closed || l.selected == nil || !l.selected.HasDriver(code) {
			l.metrics.RecordStaleDiscard(careersComponent)
			return
		}
		if _, exists := l.careers.Get(code); exists {
			l.metrics.RecordStaleDiscard(careersComponent)
			return
		}
	}
	l.careers.Merge(code, stats)
	l.metrics.RecordCareerMerge()
}

func (l *Loader) findLocked(name string) (teams.Team, bool) {
	for _, t := range l.teams {
		if t.Team == name {
			t.Drivers = append([]string(nil), t.Drivers...)
			return t, true
		}
	}
	return teams.Team{}, false
}

func (l *Loader) settledLocked() <-chan struct{} {
	return l.settled
}

func cloneTeams(in []teams.Team) []teams.Team {
	out := make([]teams.Team, 0, len(in))
	for _, t := range in {
		t.Drivers = append([]string(nil), t.Drivers...)
		out = append(out, t)
	}
	return out
}
