package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairSetSymmetry(t *testing.T) {
	a, b, c := new(int), new(int), new(int)

	s := NewPairSet[int]()
	require.Equal(t, 0, s.Len())

	s.Add(a, b)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(a, b))
	require.True(t, s.Contains(b, a))
	require.False(t, s.Contains(a, c))

	// Re-adding in either orientation does not grow the set.
	s.Add(a, b)
	s.Add(b, a)
	require.Equal(t, 1, s.Len())

	s.Add(b, c)
	require.Equal(t, 2, s.Len())
	require.Len(t, s.Pairs(), 2)
}
