package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	retries         int
	lastRetryDelay  time.Duration
	lastCallLatency time.Duration
}

type dashboardStats struct {
	loads        int
	partialLoads int
	partFailures map[string]int
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// dashboard loads, optionally mirrored into OpenTelemetry instruments.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*upstreamStats
	dashboard dashboardStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*upstreamStats),
		dashboard: dashboardStats{partFailures: make(map[string]int)},
		otel:      otel,
	}
}

// RecordUpstreamAttempt counts a single HTTP attempt against an upstream and stores its latency.
func (r *Recorder) RecordUpstreamAttempt(upstream string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(upstream)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(upstream, duration, err)
	}
}

// RecordRetry tracks that a failed attempt is about to be retried after delay.
func (r *Recorder) RecordRetry(upstream string, delay time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(upstream)
	stats.retries++
	stats.lastRetryDelay = delay
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRetry(upstream, delay)
	}
}

// RecordDashboardLoad tracks one aggregated team dashboard load and which parts failed.
func (r *Recorder) RecordDashboardLoad(duration time.Duration, failedParts []string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.dashboard.loads++
	if len(failedParts) > 0 {
		r.dashboard.partialLoads++
	}
	for _, part := range failedParts {
		r.dashboard.partFailures[part]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDashboardLoad(duration, failedParts)
	}
}

// UpstreamCalls returns the total attempts recorded for an upstream.
func (r *Recorder) UpstreamCalls(upstream string) int {
	return r.Snapshot(upstream).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an upstream.
func (r *Recorder) UpstreamErrors(upstream string) int {
	return r.Snapshot(upstream).Errors
}

// Retries returns how many retries were scheduled for an upstream.
func (r *Recorder) Retries(upstream string) int {
	return r.Snapshot(upstream).Retries
}

// Snapshot is a copy of the current stats for one upstream.
type Snapshot struct {
	Calls           int
	Errors          int
	Retries         int
	LastRetryDelay  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(upstream string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[upstream]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Retries:         stats.retries,
		LastRetryDelay:  stats.lastRetryDelay,
		LastCallLatency: stats.lastCallLatency,
	}
}

// DashboardSnapshot is a copy of the dashboard load counters.
type DashboardSnapshot struct {
	Loads        int
	PartialLoads int
	PartFailures map[string]int
}

func (r *Recorder) Dashboard() DashboardSnapshot {
	if r == nil {
		return DashboardSnapshot{PartFailures: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	failures := make(map[string]int, len(r.dashboard.partFailures))
	for k, v := range r.dashboard.partFailures {
		failures[k] = v
	}
	return DashboardSnapshot{
		Loads:        r.dashboard.loads,
		PartialLoads: r.dashboard.partialLoads,
		PartFailures: failures,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(upstream string) *upstreamStats {
	stats, ok := r.stats[upstream]
	if !ok {
		stats = &upstreamStats{}
		r.stats[upstream] = stats
	}
	return stats
}
