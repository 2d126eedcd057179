package policy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestHandleLogsAndCounts(t *testing.T) {
	tests := []struct {
		name  Name
		level string
	}{
		{FallbackToDemo, "level=WARN"},
		{LogAndLeaveEmpty, "level=WARN"},
		{BestEffortMerge, "level=DEBUG"},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			var buf bytes.Buffer
			rec := metrics.NewRecorder()
			p := New(tt.name, "telemetry", newTestLogger(&buf), rec)

			p.Handle(context.Background(), &providers.StatusError{Endpoint: "results", StatusCode: 500})

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "policy="+string(tt.name))
			assert.Contains(t, out, "component=telemetry")
			assert.Contains(t, out, "error_kind=status")
			assert.Equal(t, 1, rec.PolicyFailures(string(tt.name), "telemetry"))
			assert.Equal(t, tt.name, p.Name())
		})
	}
}

func TestHandleIgnoresNil(t *testing.T) {
	var buf bytes.Buffer
	rec := metrics.NewRecorder()
	p := New(LogAndLeaveEmpty, "catalog", newTestLogger(&buf), rec)

	p.Handle(context.Background(), nil)

	assert.Empty(t, buf.String())
	assert.Zero(t, rec.PolicyFailures(string(LogAndLeaveEmpty), "catalog"))
}

func TestHandleDoesNotCountCancellation(t *testing.T) {
	var buf bytes.Buffer
	rec := metrics.NewRecorder()
	p := New(BestEffortMerge, "roster", newTestLogger(&buf), rec)

	p.Handle(context.Background(), fmt.Errorf("career: %w", context.Canceled))

	assert.Contains(t, buf.String(), "error_kind=canceled")
	assert.Zero(t, rec.PolicyFailures(string(BestEffortMerge), "roster"))
}

func TestZeroPolicyIsSilent(t *testing.T) {
	var p Policy
	assert.NotPanics(t, func() {
		p.Handle(context.Background(), errors.New("boom"))
	})
}
