package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagIndex_AddRemove(t *testing.T) {
	idx := newTagIndex()

	idx.add("x", "a")
	idx.add("x", "b")
	idx.add("y", "b")

	assert.ElementsMatch(t, []string{"a", "b"}, idx.keysForTag("x"))
	assert.ElementsMatch(t, []string{"b"}, idx.keysForTag("y"))

	idx.remove("x", "a")
	assert.ElementsMatch(t, []string{"b"}, idx.keysForTag("x"))
}

func TestTagIndex_EmptyBucketIsRemoved(t *testing.T) {
	idx := newTagIndex()
	idx.add("x", "a")

	idx.remove("x", "a")

	_, exists := idx.buckets["x"]
	require.False(t, exists, "empty bucket must be garbage collected")
	assert.Nil(t, idx.keysForTag("x"))
}

func TestTagIndex_RemoveUnknownTagIsNoop(t *testing.T) {
	idx := newTagIndex()
	idx.remove("nonexistent", "a") // must not panic
	assert.Nil(t, idx.keysForTag("nonexistent"))
}

func TestTagIndex_UnknownTagReturnsNil(t *testing.T) {
	idx := newTagIndex()
	assert.Nil(t, idx.keysForTag("missing"))
}
