package cache

import (
	"container/list"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codewandler/kvcache/internal/sf"
	"github.com/codewandler/kvcache/metrics"
)

// Engine is a thread-safe, in-process key-value cache with bounded capacity,
// LRU eviction, per-entry or default TTL expiration, and tag-based bulk
// invalidation. A single coordinating mutex protects the primary store, the
// recency order, the tag index, and the statistics counters as one unit, so
// every public operation is linearizable with respect to every other.
type Engine struct {
	mu       sync.Mutex
	data     map[string]*entry
	recency  *recencyOrder
	tags     *tagIndex
	counters counters

	maxSize    int
	defaultTTL time.Duration
	log        *slog.Logger
	clock      func() time.Time
	metrics    metrics.Recorder

	loads sf.Group[[]byte]

	closeOnce sync.Once
	stopSweep chan struct{}
	sweepDone chan struct{}
}

// New constructs an Engine. With no options it is unbounded, entries never
// expire, and it logs to slog.Default().
func New(opts ...Option) *Engine {
	cfg := config{
		clock:   time.Now,
		log:     slog.Default(),
		metrics: metrics.NewNop(),
	}
	for _, o := range opts {
		o(&cfg)
	}

	e := &Engine{
		data:       make(map[string]*entry),
		recency:    newRecencyOrder(),
		tags:       newTagIndex(),
		maxSize:    cfg.maxSize,
		defaultTTL: cfg.defaultTTL,
		log:        cfg.log,
		clock:      cfg.clock,
		metrics:    cfg.metrics,
	}

	e.log.Debug("cache created",
		slog.Int("max_size", e.maxSize),
		slog.Duration("default_ttl", e.defaultTTL),
	)

	if cfg.sweepInterval > 0 {
		e.startSweep(cfg.sweepInterval)
	}

	return e
}

func (e *Engine) now() time.Time { return e.clock() }

// Set stores value under key, returning false if key is empty, the TTL is
// negative, or a tag is the empty string. On success the entry is placed at
// the hot end of the recency order and evicts from the cold end until
// size <= max_size.
func (e *Engine) Set(key string, value []byte, opts ...SetOption) bool {
	if err := e.SetErr(key, value, opts...); err != nil {
		e.log.Warn("cache set rejected", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// SetErr behaves like Set but reports which validation failed, wrapped with
// fmt.Errorf around ErrEmptyKey, ErrNegativeTTL, or ErrInvalidTag.
func (e *Engine) SetErr(key string, value []byte, opts ...SetOption) error {
	if key == "" {
		return fmt.Errorf("kvcache: set: %w", ErrEmptyKey)
	}

	var so setOptions
	for _, o := range opts {
		o(&so)
	}
	if so.hasTTL && so.ttl < 0 {
		return fmt.Errorf("kvcache: set %q: %w", key, ErrNegativeTTL)
	}
	tags, ok := normalizeTags(so.tags)
	if !ok {
		return fmt.Errorf("kvcache: set %q: %w", key, ErrInvalidTag)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()

	var node *list.Element
	if old, exists := e.data[key]; exists {
		if old.expired(now) {
			e.removeLocked(key, old)
			e.counters.expirations++
			e.metrics.Expiration()
		} else {
			for _, t := range old.tags {
				e.tags.remove(t, key)
			}
			node = old.node
		}
	}

	var expiresAt time.Time
	switch {
	case so.hasTTL:
		expiresAt = now.Add(so.ttl)
	case e.defaultTTL > 0:
		expiresAt = now.Add(e.defaultTTL)
	}

	node = e.recency.promote(key, node)
	e.data[key] = &entry{
		value:      append([]byte(nil), value...),
		insertedAt: now,
		expiresAt:  expiresAt,
		tags:       tags,
		node:       node,
	}
	for _, t := range tags {
		e.tags.add(t, key)
	}

	e.counters.sets++
	e.metrics.Set()

	if e.maxSize > 0 {
		for e.recency.len() > e.maxSize {
			e.evictColdestLocked()
		}
	}
	e.metrics.Size(len(e.data))

	return nil
}

// Get returns a copy of the value stored under key. It reports a miss if
// the key is absent or its TTL has elapsed, lazily removing a stale entry
// and counting it as an expiration in addition to the miss.
func (e *Engine) Get(key string) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.data[key]
	if !ok {
		e.counters.misses++
		e.metrics.Miss()
		return nil, false
	}

	now := e.now()
	if ent.expired(now) {
		e.removeLocked(key, ent)
		e.counters.expirations++
		e.counters.misses++
		e.metrics.Expiration()
		e.metrics.Miss()
		e.metrics.Size(len(e.data))
		return nil, false
	}

	ent.node = e.recency.promote(key, ent.node)
	e.counters.hits++
	e.metrics.Hit()

	return append([]byte(nil), ent.value...), true
}

// Delete removes key, returning true only if it was present and live.
// An already-expired-but-unswept key is treated as absent: it counts as an
// expiration, not a delete, and Delete returns false.
func (e *Engine) Delete(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.data[key]
	if !ok {
		return false
	}

	now := e.now()
	if ent.expired(now) {
		e.removeLocked(key, ent)
		e.counters.expirations++
		e.metrics.Expiration()
		e.metrics.Size(len(e.data))
		return false
	}

	e.removeLocked(key, ent)
	e.counters.deletes++
	e.metrics.Delete()
	e.metrics.Size(len(e.data))
	return true
}

// Keys returns a snapshot of all live keys, opportunistically sweeping any
// stale entries it encounters.
func (e *Engine) Keys() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	keys := make([]string, 0, len(e.data))
	for key, ent := range e.data {
		if ent.expired(now) {
			e.removeLocked(key, ent)
			e.counters.expirations++
			e.metrics.Expiration()
			continue
		}
		keys = append(keys, key)
	}
	e.metrics.Size(len(e.data))
	return keys
}

// InvalidateTag removes every entry carrying tag and returns how many were
// removed, each counted as a delete.
func (e *Engine) InvalidateTag(tag string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := e.tags.keysForTag(tag)
	removed := 0
	for _, key := range keys {
		ent, ok := e.data[key]
		if !ok {
			continue
		}
		e.removeLocked(key, ent)
		e.counters.deletes++
		e.metrics.Delete()
		removed++
	}
	e.metrics.Size(len(e.data))
	return removed
}

// Flush clears the primary store, recency order, and tag index, and resets
// every statistics counter to zero, returning how many entries were
// removed.
func (e *Engine) Flush() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := len(e.data)
	e.data = make(map[string]*entry)
	e.recency = newRecencyOrder()
	e.tags = newTagIndex()
	e.counters = counters{}
	e.metrics.Size(0)
	e.log.Debug("cache flushed", slog.Int("removed", removed))
	return removed
}

// Stats returns a consistent snapshot of the engine's statistics counters,
// taken under the coordinating lock.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	var maxSize *int
	if e.maxSize > 0 {
		m := e.maxSize
		maxSize = &m
	}

	return Stats{
		Size:        len(e.data),
		MaxSize:     maxSize,
		Hits:        e.counters.hits,
		Misses:      e.counters.misses,
		Sets:        e.counters.sets,
		Deletes:     e.counters.deletes,
		Evictions:   e.counters.evictions,
		Expirations: e.counters.expirations,
		HitRate:     e.counters.hitRate(),
	}
}

// GetOrSet returns the live value for key, calling load to populate it on a
// miss. Concurrent callers racing on the same missing key collapse into a
// single load call via singleflight; the loader never runs with the
// coordinating lock held.
func (e *Engine) GetOrSet(key string, load func() ([]byte, error), opts ...SetOption) ([]byte, error) {
	if v, ok := e.Get(key); ok {
		return v, nil
	}

	return e.loads.Do(key, func() ([]byte, error) {
		if v, ok := e.Get(key); ok {
			return v, nil
		}
		val, err := load()
		if err != nil {
			return nil, err
		}
		e.Set(key, val, opts...)
		return val, nil
	})
}

// Close stops the background sweep goroutine started by WithSweepInterval,
// if any. It is safe to call on an Engine with no sweep configured, and
// safe to call more than once.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		if e.stopSweep != nil {
			close(e.stopSweep)
			<-e.sweepDone
		}
	})
}

// removeLocked detaches key from the store, recency order, and every tag
// bucket it belongs to. Callers must hold e.mu.
func (e *Engine) removeLocked(key string, ent *entry) {
	delete(e.data, key)
	e.recency.remove(ent.node)
	for _, t := range ent.tags {
		e.tags.remove(t, key)
	}
}

// evictColdestLocked removes the single coldest entry, incrementing
// evictions. Callers must hold e.mu.
func (e *Engine) evictColdestLocked() {
	back := e.recency.back()
	if back == nil {
		return
	}
	key := back.Value.(string)
	ent, ok := e.data[key]
	if !ok {
		e.recency.remove(back)
		return
	}
	e.removeLocked(key, ent)
	e.counters.evictions++
	e.metrics.Eviction()
}

func (e *Engine) startSweep(interval time.Duration) {
	e.stopSweep = make(chan struct{})
	e.sweepDone = make(chan struct{})
	go func() {
		defer close(e.sweepDone)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				e.sweepOnce()
			case <-e.stopSweep:
				return
			}
		}
	}()
}

func (e *Engine) sweepOnce() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	for key, ent := range e.data {
		if ent.expired(now) {
			e.removeLocked(key, ent)
			e.counters.expirations++
			e.metrics.Expiration()
		}
	}
	e.metrics.Size(len(e.data))
}

// normalizeTags dedupes tags and rejects an empty tag string.
func normalizeTags(tags []string) ([]string, bool) {
	if len(tags) == 0 {
		return nil, true
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			return nil, false
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, true
}
