package policy

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
)

// Name identifies how a loader reacts to an upstream failure.
type Name string

const (
	// FallbackToDemo substitutes the bundled demo data and surfaces a warning.
	FallbackToDemo Name = "fallback_to_demo"
	// LogAndLeaveEmpty logs and keeps the component's state empty.
	LogAndLeaveEmpty Name = "log_and_leave_empty"
	// BestEffortMerge drops the failed item and keeps whatever else arrived.
	BestEffortMerge Name = "best_effort_merge"
)

// Policy reports failures for one component under one named policy.
// The zero value is usable and silent.
type Policy struct {
	name      Name
	component string
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// New builds a policy for component.
func New(name Name, component string, logger *slog.Logger, recorder *metrics.Recorder) Policy {
	return Policy{name: name, component: component, logger: logger, metrics: recorder}
}

// Name returns the policy name.
func (p Policy) Name() Name {
	return p.name
}

// Handle logs err and counts it. Cancellations come from superseded selections
// and are logged at debug without being counted.
func (p Policy) Handle(ctx context.Context, err error, args ...any) {
	if err == nil {
		return
	}
	kind := providers.Classify(err)
	args = append(args,
		slog.String(logging.FieldComponent, p.component),
		slog.String(logging.FieldPolicy, string(p.name)),
		slog.String(logging.FieldErrorKind, string(kind)),
		slog.Any("error", err),
	)

	logger := logging.FromContext(ctx, p.logger)
	if kind == providers.KindCanceled {
		logging.Debug(logger, "upstream fetch canceled", args...)
		return
	}
	p.metrics.RecordPolicyFailure(string(p.name), p.component, string(kind))

	switch p.name {
	case BestEffortMerge:
		logging.Debug(logger, "upstream fetch failed, skipping item", args...)
	case FallbackToDemo:
		logging.Warn(logger, "upstream fetch failed, using demo data", args...)
	default:
		logging.Warn(logger, "upstream fetch failed, leaving state empty", args...)
	}
}
