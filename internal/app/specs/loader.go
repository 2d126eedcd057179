package specs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/policy"
	domainspecs "github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
)

const component = "specs"

// Loader fetches the static spec table once.
type Loader struct {
	provider providers.SpecsProvider
	policy   policy.Policy
	logger   *slog.Logger

	mu     sync.RWMutex
	specs  domainspecs.Specs
	loaded bool
}

// New constructs an empty Loader.
func New(provider providers.SpecsProvider, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		provider: provider,
		policy:   policy.New(policy.LogAndLeaveEmpty, component, logger, recorder),
		logger:   logger,
	}
}

// Init fetches the specs. On failure the table stays unset.
func (l *Loader) Init(ctx context.Context) error {
	out, err := l.provider.FetchSpecs(ctx)
	if err != nil {
		l.policy.Handle(ctx, err)
		return err
	}
	l.mu.Lock()
	l.specs = out
	l.loaded = true
	l.mu.Unlock()
	logging.Debug(l.logger, "car specs loaded")
	return nil
}

// Specs returns the table and whether it was loaded.
func (l *Loader) Specs() (domainspecs.Specs, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.specs, l.loaded
}
