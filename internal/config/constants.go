package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAPIBaseURL      = "F1_API_BASE_URL"
	envAPITimeout      = "F1_API_TIMEOUT"
	envCareerCacheTTL  = "CAREER_CACHE_TTL"
	envSeason          = "SEASON"
	envInitialRound    = "INITIAL_ROUND"
	envTyreRoster      = "TYRE_ROSTER"
	envDemoDataset     = "DEMO_DATASET_PATH"
	envAdminToken      = "ADMIN_TOKEN"

	defaultPort = "4000"
	// Zero disables periodic refresh; a failed race stays on demo data until re-selected.
	defaultRefreshInterval = Duration(0)
	defaultProvider        = "f1api"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "f1-telemetry-service"
	defaultAPIBaseURL      = "http://127.0.0.1:8000"
	defaultAPITimeout      = 10 * Duration(time.Second)
	defaultCareerCacheTTL  = 30 * Duration(time.Minute)
	defaultSeason          = 2024
	defaultInitialRound    = 1
)

// defaultTyreRoster is the allow-list used by the stint chart when TYRE_ROSTER is unset.
var defaultTyreRoster = []string{"VER", "PER", "ALO", "SAI", "HAM", "LEC", "RUS"}
