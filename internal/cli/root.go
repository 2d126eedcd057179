// Package cli implements the f1dash terminal client.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/f1-telemetry-service/internal/config"
	"github.com/preston-bernstein/f1-telemetry-service/internal/dashboard"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/server"
)

const (
	defaultLoadTimeout = 30 * time.Second
	defaultLogLevel    = "warn"
)

// DashboardFactory builds a dashboard for one CLI invocation.
type DashboardFactory func(cfg config.Config, logger *slog.Logger) *dashboard.Dashboard

type options struct {
	provider string
	baseURL  string
	season   int
	timeout  time.Duration
}

// NewRootCmd creates the f1dash root command backed by the configured provider.
func NewRootCmd(ver string) *cobra.Command {
	return newRootCmd(ver, func(cfg config.Config, logger *slog.Logger) *dashboard.Dashboard {
		return server.BuildDashboard(cfg, logger, nil)
	})
}

func newRootCmd(ver string, factory DashboardFactory) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "f1dash",
		Short:         "Render F1 race telemetry in the terminal",
		Long:          "f1dash loads race results, tyre stints, team careers and car specs and renders them as tables. Upstream failures fall back to the bundled demo race.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.provider, "provider", "", "data provider (f1api|demo); defaults to $PROVIDER")
	flags.StringVar(&opts.baseURL, "base-url", "", "F1 API base URL; defaults to $F1_API_BASE_URL")
	flags.IntVar(&opts.season, "season", 0, "season year; defaults to $SEASON")
	flags.DurationVar(&opts.timeout, "timeout", defaultLoadTimeout, "maximum time to wait for data")

	cmd.AddCommand(
		newRacesCmd(opts, factory),
		newRaceCmd(opts, factory),
		newTeamsCmd(opts, factory),
		newSpecsCmd(opts, factory),
	)
	return cmd
}

func (o *options) config() config.Config {
	cfg := config.Load()
	if o.provider != "" {
		cfg.Provider = o.provider
	}
	if o.baseURL != "" {
		cfg.F1API.BaseURL = o.baseURL
	}
	if o.season > 0 {
		cfg.Dashboard.Season = o.season
	}
	return cfg
}

// session is one initialized dashboard plus the deadline it loads under.
type session struct {
	dash   *dashboard.Dashboard
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *session) close() {
	s.cancel()
	s.dash.Close()
}

// wait blocks until done closes or the load deadline passes.
func (s *session) wait(done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-s.ctx.Done():
		return fmt.Errorf("waiting for data: %w", s.ctx.Err())
	}
}

func openSession(cmd *cobra.Command, opts *options, factory DashboardFactory) *session {
	cfg := opts.config()
	logger := logging.NewLogger(logging.Config{
		Level:  envOrDefault("LOG_LEVEL", defaultLogLevel),
		Format: os.Getenv("LOG_FORMAT"),
		Output: cmd.ErrOrStderr(),
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	dash := factory(cfg, logger)
	dash.Init(ctx)
	return &session{dash: dash, ctx: ctx, cancel: cancel}
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
