package f1api

import "time"

const (
	providerName          = "f1api"
	defaultBaseURL        = "http://127.0.0.1:8000"
	defaultHTTPTimeout    = 10 * time.Second
	defaultCareerCacheTTL = 30 * time.Minute
	maxErrorBodyBytes     = 512
)
