package dashboard

import (
	"log/slog"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/catalog"
	"github.com/preston-bernstein/f1-telemetry-service/internal/app/roster"
	specsapp "github.com/preston-bernstein/f1-telemetry-service/internal/app/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/app/telemetry"
	"github.com/preston-bernstein/f1-telemetry-service/internal/chart"
	"github.com/preston-bernstein/f1-telemetry-service/internal/config"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
	"github.com/preston-bernstein/f1-telemetry-service/internal/store"
)

// Build wires every loader over one provider.
func Build(provider providers.DataProvider, demo telemetry.DemoSource, cfg config.DashboardConfig, logger *slog.Logger, recorder *metrics.Recorder) *Dashboard {
	chartRoster := chart.DefaultRoster()
	if len(cfg.TyreRoster) > 0 {
		chartRoster = chart.NewRoster(cfg.TyreRoster)
	}
	return New(Deps{
		Catalog: catalog.New(provider, store.NewRaceStore(), catalog.Options{
			Season:       cfg.Season,
			InitialRound: cfg.InitialRound,
			Logger:       logger,
			Metrics:      recorder,
		}),
		Telemetry: telemetry.New(provider, telemetry.Options{
			Season:  cfg.Season,
			Demo:    demo,
			Logger:  logger,
			Metrics: recorder,
		}),
		Roster: roster.New(provider, store.NewCareerStore(), roster.Options{
			Season:  cfg.Season,
			Logger:  logger,
			Metrics: recorder,
		}),
		Specs:       specsapp.New(provider, logger, recorder),
		ChartRoster: chartRoster,
		Logger:      logger,
	})
}
