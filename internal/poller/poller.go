package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
)

// Target is what the poller bootstraps once and then refreshes on every tick.
type Target interface {
	Init(ctx context.Context)
	Reload(ctx context.Context) error
}

// Poller bootstraps the dashboard and, when an interval is set, periodically
// reloads the selected race.
type Poller struct {
	target   Target
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	Bootstrapped        bool
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether bootstrap has completed. Failed refreshes still serve
// demo data, so they do not take the service out of rotation.
func (s Status) IsReady() bool {
	return s.Bootstrapped
}

// New constructs a Poller. A non-positive interval disables periodic refresh;
// the poller then only bootstraps.
func New(target Target, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval < 0 {
		interval = 0
	}
	return &Poller{
		target:   target,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start bootstraps the target and then refreshes it until the context is
// cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		defer close(p.exited)
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))

		p.bootstrap(ctx)

		if p.interval == 0 {
			select {
			case <-ctx.Done():
			case <-p.done:
			}
			p.logInfo("poller stopped")
			return
		}

		p.startMu.Lock()
		p.ticker = time.NewTicker(p.interval)
		p.startMu.Unlock()
		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop and waits for it to exit or ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})
	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) bootstrap(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	p.target.Init(ctx)

	p.statusMu.Lock()
	p.status.Bootstrapped = true
	p.status.LastSuccess = start
	p.statusMu.Unlock()

	p.logInfo("dashboard bootstrapped", slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	err := p.target.Reload(ctx)
	elapsed := time.Since(start)
	p.metrics.RecordPollerCycle(elapsed, err)

	if err != nil {
		p.logWarn("poller refresh failed", err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed race telemetry", slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logWarn(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
