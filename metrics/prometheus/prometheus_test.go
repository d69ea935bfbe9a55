package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)
	require.NotNil(t, r)

	r.Hit()
	r.Hit()
	r.Miss()
	r.Set()
	r.Delete()
	r.Eviction()
	r.Expiration()
	r.Size(3)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["kvcache_hits_total"])
	assert.True(t, names["kvcache_misses_total"])
	assert.True(t, names["kvcache_sets_total"])
	assert.True(t, names["kvcache_deletes_total"])
	assert.True(t, names["kvcache_evictions_total"])
	assert.True(t, names["kvcache_expirations_total"])
	assert.True(t, names["kvcache_size"])
}
