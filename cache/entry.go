package cache

import (
	"container/list"
	"time"
)

// entry is one record associating a key with its value, optional expiry,
// tags, and its handle into the recency order.
type entry struct {
	value      []byte
	insertedAt time.Time
	expiresAt  time.Time // zero value means "never expires"
	tags       []string
	node       *list.Element // handle into the recency order, never nil once inserted
}

// expired reports whether e is stale as of now. Expiration uses >=, so a
// zero-second TTL is already expired on the very next observation.
func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
