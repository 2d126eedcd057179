package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout outlasts a ?wait=true selection, which blocks on the fetch
	// pair for up to F1_API_TIMEOUT.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds poller stop, HTTP drain and in-flight loads; tests shorten it.
var shutdownTimeout = 10 * time.Second
