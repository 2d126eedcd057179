package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	F1API           F1APIConfig
	Dashboard       DashboardConfig
	Metrics         MetricsConfig
	// AdminToken guards /admin/refresh; the route is not mounted when empty.
	AdminToken string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		F1API:           loadF1API(),
		Dashboard:       loadDashboard(),
		Metrics:         loadMetrics(),
		AdminToken:      envOrDefault(envAdminToken, ""),
	}
}
