package spatial

// Matrix is a fixed-size dense 2D container backed by one contiguous slice in
// row-major order (index = row*cols + col). It cannot be resized.
type Matrix[T any] struct {
	rows int
	cols int
	data []T
}

// NewMatrix allocates a rows x cols matrix of zero values.
func NewMatrix[T any](rows, cols int) Matrix[T] {
	return Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

func (m *Matrix[T]) Rows() int { return m.rows }
func (m *Matrix[T]) Cols() int { return m.cols }

// Index returns the element at (row, col) without bounds validation. The
// caller guarantees 0 <= row < Rows() and 0 <= col < Cols(). This is the hot
// path accessor; element pointers stay valid for the matrix lifetime.
func (m *Matrix[T]) Index(row, col int) *T {
	return &m.data[row*m.cols+col]
}

// At returns the element at (row, col), raising out-of-range for invalid
// indices.
func (m *Matrix[T]) At(row, col int) *T {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		raiseOutOfRange("Matrix.At", "index outside matrix dimensions")
	}
	return &m.data[row*m.cols+col]
}
