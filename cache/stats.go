package cache

// Stats is a consistent snapshot of the engine's statistics counters, taken
// under the coordinating lock. It is also the shape serialized at the
// external boundary by Stats().
type Stats struct {
	Size        int     `json:"size"`
	MaxSize     *int    `json:"max_size"`
	Hits        uint64  `json:"hits"`
	Misses      uint64  `json:"misses"`
	Sets        uint64  `json:"sets"`
	Deletes     uint64  `json:"deletes"`
	Evictions   uint64  `json:"evictions"`
	Expirations uint64  `json:"expirations"`
	HitRate     float64 `json:"hit_rate"`
}

// counters holds the raw monotonic counts; Stats() derives HitRate from
// them under the lock.
type counters struct {
	hits        uint64
	misses      uint64
	sets        uint64
	deletes     uint64
	evictions   uint64
	expirations uint64
}

func (c *counters) hitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}
