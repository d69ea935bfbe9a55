package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := NewSet[string]()
	require.True(t, s.IsEmpty())

	s.Add("x")
	s.Add("y")
	s.Add("x") // duplicate, no-op

	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("x"))
	require.True(t, s.Contains("y"))
	require.False(t, s.Contains("z"))

	s.Remove("x")
	require.False(t, s.Contains("x"))
	require.Equal(t, 1, s.Len())

	s.Remove("nonexistent") // no panic
	require.Equal(t, 1, s.Len())
}

func TestSet_InsertionOrderPreserved(t *testing.T) {
	s := NewSet("c", "a", "b")
	require.Equal(t, []string{"c", "a", "b"}, s.Values())

	s.Remove("a")
	require.Equal(t, []string{"c", "b"}, s.Values())
}

func TestSet_ForEach(t *testing.T) {
	s := NewSet(1, 2, 3)
	var seen []int
	s.ForEach(func(v int) { seen = append(seen, v) })
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestSet_EmptyAfterRemovingLast(t *testing.T) {
	s := NewSet("only")
	s.Remove("only")
	require.True(t, s.IsEmpty())
	require.Empty(t, s.Values())
}
