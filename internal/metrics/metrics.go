package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

type storeStats struct {
	writes      int
	writeErrors int
	blobResets  int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// poller cycles and league store activity. The in-memory counters back the
// readiness/test surface; the optional otel instruments export the same
// signals to Prometheus/OTLP.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	league   storeStats
	pollerN  int
	pollerEN int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRateLimit tracks that a provider call was held back by the local
// rate limiter.
func (r *Recorder) RecordRateLimit(provider string, waited time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(provider).rateLimitHits++
	r.mu.Unlock()

	r.otel.recordRateLimit(provider, waited)
}

// RecordPollerCycle tracks one poll loop iteration.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.pollerN++
	if err != nil {
		r.pollerEN++
	}
	r.mu.Unlock()

	r.otel.recordPoller(duration, err)
}

// RecordStoreWrite tracks a league store blob write for the named operation.
func (r *Recorder) RecordStoreWrite(op string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.league.writes++
	if err != nil {
		r.league.writeErrors++
	}
	r.mu.Unlock()

	r.otel.recordStoreWrite(op, err)
}

// RecordBlobReset tracks a data-loss reset of the league blob.
func (r *Recorder) RecordBlobReset() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.league.blobResets++
	r.mu.Unlock()

	r.otel.recordBlobReset()
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit waits seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// PollerCycles returns totals for poll cycles and failed cycles.
func (r *Recorder) PollerCycles() (cycles, failures int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pollerN, r.pollerEN
}

// StoreWrites returns totals for league blob writes and failed writes.
func (r *Recorder) StoreWrites() (writes, failures int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.league.writes, r.league.writeErrors
}

// BlobResets returns the number of league blob resets recorded.
func (r *Recorder) BlobResets() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.league.blobResets
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureStats(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
