package sf

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_DedupesConcurrentCalls(t *testing.T) {
	var g Group[int]
	var calls int32
	var wg sync.WaitGroup

	results := make([]int, 30)
	for i := 0; i < 30; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := g.Do("k", func() (int, error) {
				atomic.AddInt32(&calls, 1)
				return 7, nil
			})
			require.NoError(t, err)
			results[i] = v
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 7, r)
	}
	assert.LessOrEqual(t, calls, int32(30))
}

func TestGroup_PropagatesError(t *testing.T) {
	var g Group[int]
	boom := errors.New("boom")

	_, err := g.Do("k", func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

func TestGroup_SequentialCallsRunIndependently(t *testing.T) {
	var g Group[int]

	v1, err := g.Do("k", func() (int, error) { return 1, nil })
	require.NoError(t, err)
	require.Equal(t, 1, v1)

	v2, err := g.Do("k", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	require.Equal(t, 2, v2)
}
