// Package prometheus adapts the cache engine's metrics.Recorder interface
// to Prometheus client collectors.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/kvcache/metrics"
)

// recorder implements metrics.Recorder on top of Prometheus counters and a
// gauge, registered under the kvcache_ namespace.
type recorder struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	sets        prometheus.Counter
	deletes     prometheus.Counter
	evictions   prometheus.Counter
	expirations prometheus.Counter
	size        prometheus.Gauge
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) metrics.Recorder {
	r := &recorder{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_hits_total",
			Help: "Number of cache Get calls that found a live value.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_misses_total",
			Help: "Number of cache Get calls that found no live value.",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_sets_total",
			Help: "Number of successful Set calls.",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_deletes_total",
			Help: "Number of entries removed by Delete or InvalidateTag.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_evictions_total",
			Help: "Number of entries removed to enforce max_size.",
		}),
		expirations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_expirations_total",
			Help: "Number of entries removed because their TTL elapsed.",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kvcache_size",
			Help: "Current number of live entries in the cache.",
		}),
	}

	reg.MustRegister(r.hits, r.misses, r.sets, r.deletes, r.evictions, r.expirations, r.size)

	return r
}

func (r *recorder) Hit()        { r.hits.Inc() }
func (r *recorder) Miss()       { r.misses.Inc() }
func (r *recorder) Set()        { r.sets.Inc() }
func (r *recorder) Delete()     { r.deletes.Inc() }
func (r *recorder) Eviction()   { r.evictions.Inc() }
func (r *recorder) Expiration() { r.expirations.Inc() }
func (r *recorder) Size(n int)  { r.size.Set(float64(n)) }

var _ metrics.Recorder = (*recorder)(nil)
