package server

import (
	"log/slog"

	"github.com/preston-bernstein/f1-telemetry-service/internal/config"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/demo"
)

// loadDemoDataset reads DEMO_DATASET_PATH, falling back to the embedded
// dataset when the file is missing or incomplete.
func loadDemoDataset(cfg config.Config, logger *slog.Logger) demo.Dataset {
	ds, err := demo.Load(cfg.Dashboard.DemoDatasetPath)
	if err != nil {
		logging.Warn(logger, "demo dataset unusable, using embedded dataset",
			slog.String("path", cfg.Dashboard.DemoDatasetPath),
			slog.Any("error", err),
		)
		return demo.Default()
	}
	return ds
}
