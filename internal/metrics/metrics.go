package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and loader outcomes.
// When built through Setup it also forwards every event to OpenTelemetry instruments.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*providerStats
	loads          map[string]int
	staleDiscards  map[string]int
	careerMerges   int
	policyFailures map[string]int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:          make(map[string]*providerStats),
		loads:          make(map[string]int),
		staleDiscards:  make(map[string]int),
		policyFailures: make(map[string]int),
		otel:           otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores the last observed latency.
// endpoint is a stable name like "results" or "career", not a URL.
func (r *Recorder) RecordProviderAttempt(provider, endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(statsKey(provider, endpoint))
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, endpoint, duration, err)
	}
}

// RecordTelemetryLoad counts settled race telemetry loads by outcome ("live" or "demo").
func (r *Recorder) RecordTelemetryLoad(outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.loads[outcome]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordTelemetryLoad(outcome, duration)
	}
}

// RecordStaleDiscard counts results dropped because a newer selection superseded them.
func (r *Recorder) RecordStaleDiscard(component string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.staleDiscards[component]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordStaleDiscard(component)
	}
}

// RecordCareerMerge counts career stats entries merged into the roster map.
func (r *Recorder) RecordCareerMerge() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.careerMerges++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCareerMerge()
	}
}

// RecordPolicyFailure counts an upstream failure handled by a named failure policy.
func (r *Recorder) RecordPolicyFailure(policy, component, kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.policyFailures[policy+"/"+component]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPolicyFailure(policy, component, kind)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider endpoint.
func (r *Recorder) ProviderCalls(provider, endpoint string) int {
	return r.Snapshot(provider, endpoint).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider endpoint.
func (r *Recorder) ProviderErrors(provider, endpoint string) int {
	return r.Snapshot(provider, endpoint).Errors
}

// LastCallLatency returns the last recorded latency for a provider endpoint.
func (r *Recorder) LastCallLatency(provider, endpoint string) time.Duration {
	return r.Snapshot(provider, endpoint).LastCallLatency
}

// TelemetryLoads returns how many loads settled with the given outcome.
func (r *Recorder) TelemetryLoads(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loads[outcome]
}

// StaleDiscards returns how many results a component dropped as stale.
func (r *Recorder) StaleDiscards(component string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staleDiscards[component]
}

// CareerMerges returns the number of career entries merged.
func (r *Recorder) CareerMerges() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.careerMerges
}

// PolicyFailures returns failures handled by policy for a component.
func (r *Recorder) PolicyFailures(policy, component string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.policyFailures[policy+"/"+component]
}

// Snapshot returns a copy of the current stats for a provider endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider, endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[statsKey(provider, endpoint)]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(key string) *providerStats {
	stats, ok := r.stats[key]
	if !ok {
		stats = &providerStats{}
		r.stats[key] = stats
	}
	return stats
}

func statsKey(provider, endpoint string) string {
	return provider + "." + endpoint
}
