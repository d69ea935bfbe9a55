// Package sf provides a generic single-flight mechanism for deduplicating
// concurrent loads of the same cache key.
//
// When many goroutines race to populate the same missing key via
// cache.Engine.GetOrSet, only the first caller's loader actually runs;
// every other caller blocks and receives that same result. This prevents a
// thundering herd of identical loads on a cold or just-expired key.
package sf

import "golang.org/x/sync/singleflight"

// Group deduplicates concurrent Do calls sharing the same key, executing
// the wrapped function at most once per key at any given time.
type Group[T any] struct {
	group singleflight.Group
}

// Do runs fn for key, or waits for and returns the result of an in-flight
// call already running for that key.
func (g *Group[T]) Do(key string, fn func() (T, error)) (T, error) {
	v, err, _ := g.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
