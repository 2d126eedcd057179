package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/catalog"
	"github.com/preston-bernstein/f1-telemetry-service/internal/app/roster"
	specsapp "github.com/preston-bernstein/f1-telemetry-service/internal/app/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/app/telemetry"
	"github.com/preston-bernstein/f1-telemetry-service/internal/chart"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
)

// ErrNoSelection is returned by Reload when no round is selected.
var ErrNoSelection = errors.New("no race selected")

// Deps are the loaders a Dashboard composes.
type Deps struct {
	Catalog     *catalog.Catalog
	Telemetry   *telemetry.Loader
	Roster      *roster.Loader
	Specs       *specsapp.Loader
	ChartRoster chart.Roster
	Logger      *slog.Logger
}

// Dashboard owns the selections and turns loader state into views.
type Dashboard struct {
	catalog     *catalog.Catalog
	telemetry   *telemetry.Loader
	roster      *roster.Loader
	specs       *specsapp.Loader
	chartRoster chart.Roster
	logger      *slog.Logger

	// selectMu keeps the catalog selection and the telemetry generation in
	// the same order.
	selectMu sync.Mutex
}

// New constructs a Dashboard.
func New(deps Deps) *Dashboard {
	return &Dashboard{
		catalog:     deps.Catalog,
		telemetry:   deps.Telemetry,
		roster:      deps.Roster,
		specs:       deps.Specs,
		chartRoster: deps.ChartRoster,
		logger:      deps.Logger,
	}
}

// Init loads the pre-selected race alongside the race list, then teams and
// specs, and waits for the race and the first team's careers to settle.
// Failures are logged by the loaders and never abort startup.
func (d *Dashboard) Init(ctx context.Context) {
	var raceDone <-chan struct{}
	d.selectMu.Lock()
	initial, hasInitial := d.catalog.Selected()
	if hasInitial {
		raceDone = d.telemetry.Select(ctx, initial)
	}
	d.selectMu.Unlock()

	if err := d.catalog.Init(ctx); err != nil {
		logging.Debug(d.logger, "race list unavailable, keeping pre-selected round", slog.Int(logging.FieldRound, initial))
	}
	d.selectMu.Lock()
	if round, ok := d.catalog.Selected(); ok && round != d.telemetry.Snapshot().Round {
		raceDone = d.telemetry.Select(ctx, round)
	}
	d.selectMu.Unlock()

	if err := d.roster.Init(ctx); err != nil {
		logging.Debug(d.logger, "team list unavailable")
	}
	if err := d.specs.Init(ctx); err != nil {
		logging.Debug(d.logger, "car specs unavailable")
	}

	wait(ctx, raceDone)
	wait(ctx, d.roster.Settled())
}

// SelectRace switches to round and starts loading it.
func (d *Dashboard) SelectRace(ctx context.Context, round int) (<-chan struct{}, error) {
	d.selectMu.Lock()
	defer d.selectMu.Unlock()
	if err := d.catalog.Select(round); err != nil {
		return nil, err
	}
	return d.telemetry.Select(ctx, round), nil
}

// Refresh reloads the selected race. It reports false when no round is selected.
func (d *Dashboard) Refresh(ctx context.Context) (<-chan struct{}, bool) {
	d.selectMu.Lock()
	defer d.selectMu.Unlock()
	round, ok := d.catalog.Selected()
	if !ok {
		return nil, false
	}
	return d.telemetry.Select(ctx, round), true
}

// Reload re-runs the selected race and waits for it to settle. A load that
// fell back to demo data reports the upstream error.
func (d *Dashboard) Reload(ctx context.Context) error {
	done, ok := d.Refresh(ctx)
	if !ok {
		return ErrNoSelection
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	snap := d.telemetry.Snapshot()
	if snap.Demo && snap.Err != nil {
		return snap.Err
	}
	return nil
}

// SelectTeam switches the roster to name.
func (d *Dashboard) SelectTeam(ctx context.Context, name string) (<-chan struct{}, error) {
	return d.roster.SelectTeam(ctx, name)
}

// Races returns the catalog and the selected round.
func (d *Dashboard) Races() ([]races.Race, int) {
	round, _ := d.catalog.Selected()
	return d.catalog.Races(), round
}

// RaceView renders the current race state.
func (d *Dashboard) RaceView() RaceView {
	snap := d.telemetry.Snapshot()
	list, round := d.Races()
	if snap.State != telemetry.StateIdle {
		round = snap.Round
	}

	view := RaceView{
		Status:         string(snap.State),
		ShowLoading:    snap.ShowLoadingIndicator(),
		Round:          round,
		DataRound:      snap.DataRound,
		Source:         snap.Source(),
		Warning:        snap.Warning(),
		Podium:         []races.ResultEntry{},
		Classification: []races.ResultEntry{},
		Stints:         chart.BuildStintSeries(snap.Stints, d.chartRoster),
		Legend:         chart.Legend(),
		Races:          list,
	}
	if snap.Results != nil {
		view.RaceName = snap.Results.Race
		view.Podium = snap.Results.Podium()
		view.Classification = snap.Results.Results
	}
	return view
}

// TeamView renders the team list and the selected team's careers.
func (d *Dashboard) TeamView() TeamView {
	view := TeamView{Teams: d.roster.Teams(), Drivers: []DriverCareer{}}
	team, ok := d.roster.Selected()
	if !ok {
		return view
	}
	view.Selected = &team
	careers := d.roster.Careers()
	for _, code := range team.Drivers {
		entry := DriverCareer{Code: code}
		if stats, ok := careers[code]; ok {
			entry.Stats = &stats
		}
		view.Drivers = append(view.Drivers, entry)
	}
	return view
}

// SpecsView renders the spec table with humanized labels.
func (d *Dashboard) SpecsView() SpecsView {
	s, ok := d.specs.Specs()
	return buildSpecsView(s, ok)
}

// Close stops in-flight loads.
func (d *Dashboard) Close() {
	d.telemetry.Close()
	d.roster.Close()
}

func wait(ctx context.Context, done <-chan struct{}) {
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-ctx.Done():
	}
}
