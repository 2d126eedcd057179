package config

// DashboardConfig controls what the dashboard loads and how the stint chart is filtered.
type DashboardConfig struct {
	Season       int
	InitialRound int
	TyreRoster   []string
	// DemoDatasetPath optionally replaces the embedded demo dataset.
	DemoDatasetPath string
}

func loadDashboard() DashboardConfig {
	return DashboardConfig{
		Season:          intEnvOrDefault(envSeason, defaultSeason),
		InitialRound:    intEnvOrDefault(envInitialRound, defaultInitialRound),
		TyreRoster:      listEnvOrDefault(envTyreRoster, defaultTyreRoster),
		DemoDatasetPath: envOrDefault(envDemoDataset, ""),
	}
}
