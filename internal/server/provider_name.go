package server

import (
	"strings"

	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/demo"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers/f1api"
)

// normalizeProviderName returns a lower-cased provider name, deriving from the
// instance when it is not configured or does not match the instance.
// Keeps the provider label on metrics and logs consistent with what is actually serving.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	switch provider.(type) {
	case *f1api.Client:
		return providerF1API
	case *demo.Provider:
		return providerDemo
	}
	if raw != "" {
		return strings.ToLower(raw)
	}
	return "provider"
}
