package cache

import (
	"log/slog"
	"time"

	"github.com/codewandler/kvcache/metrics"
)

type config struct {
	maxSize       int
	defaultTTL    time.Duration
	log           *slog.Logger
	clock         func() time.Time
	metrics       metrics.Recorder
	sweepInterval time.Duration
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithMaxSize bounds the number of live entries. A value <= 0 is treated as
// unset (unbounded).
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithDefaultTTL sets the TTL applied to entries whose Set call omits a
// per-entry TTL. A value <= 0 is treated as unset (entries never expire
// unless given an explicit TTL).
func WithDefaultTTL(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.defaultTTL = d
		}
	}
}

// WithLogger sets the structured logger used for lifecycle and anomaly
// events. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides the monotonic time source, primarily for deterministic
// TTL tests. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithMetrics attaches a Recorder that observes every hit, miss, set,
// delete, eviction, and expiration as they happen. Defaults to a no-op
// recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.metrics = r
		}
	}
}

// WithSweepInterval starts a background goroutine that proactively removes
// expired entries every d, in addition to the lazy expiration every read
// path already performs. Close stops the goroutine.
func WithSweepInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.sweepInterval = d
		}
	}
}
