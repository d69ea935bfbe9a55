// Package cache implements an in-process, thread-safe key-value cache
// engine combining bounded-capacity LRU eviction, per-entry TTL expiration,
// and tag-based bulk invalidation.
//
// # Basic usage
//
//	c := cache.New(cache.WithMaxSize(1000), cache.WithDefaultTTL(5*time.Minute))
//
//	c.Set("user:42", payload, cache.WithTags("user", "region:eu"))
//	if val, ok := c.Get("user:42"); ok {
//	    // use val
//	}
//
// # Tag invalidation
//
// Entries can carry tags at Set time and be bulk-removed later:
//
//	c.InvalidateTag("region:eu")
//
// # Load-or-populate
//
// GetOrSet collapses concurrent misses on the same key into a single
// loader call:
//
//	val, err := c.GetOrSet("user:42", func() ([]byte, error) {
//	    return fetchUser(42)
//	})
package cache
