package server

import (
	"log/slog"

	"github.com/preston-bernstein/f1-telemetry-service/internal/config"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/demo"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/f1api"
)

const (
	providerF1API = "f1api"
	providerDemo  = "demo"
)

func selectProvider(cfg config.Config, dataset demo.Dataset, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case providerF1API, "":
		return f1api.NewClient(f1api.Config{
			BaseURL:        cfg.F1API.BaseURL,
			Timeout:        cfg.F1API.Timeout,
			CareerCacheTTL: cfg.F1API.CareerCacheTTL,
		})
	case providerDemo:
		return demo.New(dataset)
	default:
		logging.Warn(logger, "unknown provider, falling back to demo", slog.String(logging.FieldProvider, cfg.Provider))
		return demo.New(dataset)
	}
}
