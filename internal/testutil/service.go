package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/f1-telemetry-service/internal/config"
	"github.com/preston-bernstein/f1-telemetry-service/internal/dashboard"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/demo"
)

// NewDashboard builds a dashboard over provider for season 2024, round 1.
// The dashboard is closed when the test ends.
func NewDashboard(t *testing.T, provider providers.DataProvider) *dashboard.Dashboard {
	t.Helper()
	cfg := config.DashboardConfig{Season: 2024, InitialRound: 1}
	d := dashboard.Build(provider, demo.Default(), cfg, nil, nil)
	t.Cleanup(d.Close)
	return d
}

// NewInitializedDashboard builds a dashboard and waits for Init to finish.
func NewInitializedDashboard(t *testing.T, provider providers.DataProvider) *dashboard.Dashboard {
	t.Helper()
	d := NewDashboard(t, provider)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	d.Init(ctx)
	return d
}
