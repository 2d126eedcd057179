package config

// F1APIConfig controls how we talk to the upstream F1 data API.
type F1APIConfig struct {
	BaseURL        string
	Timeout        Duration
	CareerCacheTTL Duration
}

func loadF1API() F1APIConfig {
	return F1APIConfig{
		BaseURL:        envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Timeout:        durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
		CareerCacheTTL: durationEnvOrDefault(envCareerCacheTTL, defaultCareerCacheTTL),
	}
}
