// Package metrics provides abstract instrumentation interfaces so the cache
// engine stays decoupled from any specific metrics backend (Prometheus,
// StatsD, or none at all).
package metrics

// Counter is a monotonically increasing metric.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()
}

// Gauge is a metric that can move up and down, used for the live entry count.
type Gauge interface {
	// Set sets the gauge to value.
	Set(value float64)
}

// Recorder is the set of cache-specific signals the engine emits. It mirrors
// the statistics counters the engine's Stats() reports, so a backend only
// has to implement one small interface to observe the cache.
type Recorder interface {
	Hit()
	Miss()
	Set()
	Delete()
	Eviction()
	Expiration()
	Size(n int)
}

