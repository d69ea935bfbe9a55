package cache

import "time"

// setOptions collects the optional per-call arguments to Set.
type setOptions struct {
	ttl    time.Duration
	hasTTL bool
	tags   []string
}

// SetOption configures a single Set (or GetOrSet) call.
type SetOption func(*setOptions)

// WithTTL gives this entry a per-call time-to-live that overrides the
// cache's default TTL. A TTL of zero means the entry is already expired on
// its next observation.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) {
		o.ttl = ttl
		o.hasTTL = true
	}
}

// WithTags attaches tags to the entry for bulk invalidation via
// InvalidateTag. Duplicate tags collapse; an empty tag string makes the
// Set call fail.
func WithTags(tags ...string) SetOption {
	return func(o *setOptions) {
		o.tags = tags
	}
}
