package cache

import "errors"

var (
	// ErrEmptyKey is returned when a key is the empty string.
	ErrEmptyKey = errors.New("kvcache: key must not be empty")
	// ErrInvalidTag is returned when a tag is the empty string.
	ErrInvalidTag = errors.New("kvcache: tag must not be empty")
	// ErrNegativeTTL is returned when a per-entry TTL is negative.
	ErrNegativeTTL = errors.New("kvcache: ttl must not be negative")
)
