package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixRowMajor(t *testing.T) {
	m := NewMatrix[int](3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())

	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			*m.Index(row, col) = row*m.Cols() + col
		}
	}

	// Checked and unchecked accessors see the same storage.
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			require.Equal(t, row*m.Cols()+col, *m.At(row, col))
		}
	}

	// Adjacent columns are adjacent in the backing slice.
	require.Equal(t, *m.Index(1, 0)+1, *m.Index(1, 1))
}

func TestMatrixPointerStability(t *testing.T) {
	m := NewMatrix[string](2, 2)
	p := m.Index(1, 1)
	*p = "hello"
	require.Equal(t, "hello", *m.At(1, 1))
	require.Same(t, p, m.Index(1, 1))
}

func TestMatrixAtOutOfRange(t *testing.T) {
	m := NewMatrix[int](2, 3)

	// At is always bounds-checked, in both build profiles.
	requireRaises(t, KindOutOfRange, func() { m.At(2, 0) })
	requireRaises(t, KindOutOfRange, func() { m.At(0, 3) })
	requireRaises(t, KindOutOfRange, func() { m.At(-1, 0) })
	requireRaises(t, KindOutOfRange, func() { m.At(0, -1) })
}
