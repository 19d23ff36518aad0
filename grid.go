// Package spatial implements a uniform-grid spatial index for movable 2D
// bodies: a bounded world rectangle is partitioned into a fixed rows x cols
// grid of cells, and proximity queries ("who is near this body", "which pairs
// are within distance d") scan only neighboring cells instead of comparing
// every body against every other.
package spatial

import "math"

// PositionFunc extracts a body's current 2D position. The grid never caches
// what it returns: every indexing operation calls it afresh, so it must be
// cheap and must reflect the body's live state.
type PositionFunc[T float32 | float64, B any] func(*B) Vector2[T]

// Cell is one grid subdivision: an ordered collection of body handles. Cell
// pointers returned by grid operations stay valid and stable for the grid's
// lifetime, so callers can hold one between ticks to drive relocation.
type Cell[B any] []*B

// Grid is a uniform spatial index over a bounded rectangular region,
// partitioned into rows x cols equally sized cells. Bodies are tracked by
// pointer handles; the grid shares ownership with the caller and never
// allocates or frees a body itself.
//
// The grid does not observe movement. When a body's position changes, the
// caller must relocate it with UpdateBodyCell, passing the cell previously
// returned by AddBody or UpdateBodyCell.
//
// A Grid must not be copied after construction and has no internal locking;
// concurrent use requires external mutual exclusion over the whole instance.
type Grid[T float32 | float64, B any] struct {
	bound    Rect[T]
	rows     int
	cols     int
	position PositionFunc[T, B]

	cells     Matrix[Cell[B]]
	numBodies int
}

// NewGrid builds a grid over bound with the given partition. rows and cols
// must be positive; position must be non-nil.
func NewGrid[T float32 | float64, B any](bound Rect[T], rows, cols int, position PositionFunc[T, B]) *Grid[T, B] {
	if validate {
		if rows <= 0 || cols <= 0 {
			raiseInvalidArgument("NewGrid", "rows and columns must be greater than 0")
		}
		if position == nil {
			raiseInvalidArgument("NewGrid", "position function must not be nil")
		}
	}
	return &Grid[T, B]{
		bound:    bound,
		rows:     rows,
		cols:     cols,
		position: position,
		cells:    NewMatrix[Cell[B]](rows, cols),
	}
}

// Bound returns the world rectangle the grid partitions.
func (g *Grid[T, B]) Bound() Rect[T] { return g.bound }

// Rows returns the number of cell rows.
func (g *Grid[T, B]) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid[T, B]) Cols() int { return g.cols }

// CellSize returns the dimensions of one cell: the bound size divided
// component-wise by (cols, rows).
func (g *Grid[T, B]) CellSize() Vector2[T] {
	return g.bound.Size.CwiseDiv(Vector2[T]{X: T(g.cols), Y: T(g.rows)})
}

// CellIndex computes the (row, col) cell owning the body's current position.
// A position outside the bound maps outside [0,rows)x[0,cols), which the
// validated profile raises as out-of-range; the position exactly on the
// right or bottom edge of the bound is already outside.
func (g *Grid[T, B]) CellIndex(body *B) (row, col int) {
	relative := g.position(body).Sub(g.bound.Position)
	cellSize := g.CellSize()

	row = int(math.Floor(float64(relative.Y / cellSize.Y)))
	col = int(math.Floor(float64(relative.X / cellSize.X)))

	if validate && (row < 0 || row >= g.rows || col < 0 || col >= g.cols) {
		raiseOutOfRange("Grid.CellIndex", "body position outside the grid bound")
	}
	return row, col
}

// BodyCell returns the cell computed from the body's current position.
func (g *Grid[T, B]) BodyCell(body *B) *Cell[B] {
	row, col := g.CellIndex(body)
	return g.cells.Index(row, col)
}

// BodyCount returns the number of handles currently stored across all cells.
func (g *Grid[T, B]) BodyCount() int { return g.numBodies }

// AddBody inserts a body handle into the cell owning its current position and
// returns that cell, so the caller can remember it for later relocation
// without recomputing the index.
func (g *Grid[T, B]) AddBody(body *B) *Cell[B] {
	cell := g.BodyCell(body)
	*cell = append(*cell, body)
	g.numBodies++
	return cell
}

// RemoveBody removes every handle in cell whose identity equals body and
// returns how many were removed. The body being absent from the stated cell
// is not an error; the result is then 0.
func (g *Grid[T, B]) RemoveBody(body *B, cell *Cell[B]) int {
	old := *cell
	kept := old[:0]
	for _, handle := range old {
		if handle == body {
			continue
		}
		kept = append(kept, handle)
	}
	removed := len(old) - len(kept)
	// Zero the vacated tail so the grid does not pin removed bodies.
	for i := len(kept); i < len(old); i++ {
		old[i] = nil
	}
	*cell = kept
	g.numBodies -= removed
	return removed
}

// UpdateBodyCell relocates a body after its position changed. previous is the
// cell obtained from the last AddBody or UpdateBodyCell call for this body.
// When the body is still inside the same cell this is an O(1) no-op returning
// previous itself; otherwise the handle is moved, order preserved in the old
// cell and appended to the new one. The body missing from previous means the
// caller's cell bookkeeping has drifted from the grid; the validated profile
// raises out-of-range, the performance profile leaves the grid unchanged.
func (g *Grid[T, B]) UpdateBodyCell(body *B, previous *Cell[B]) *Cell[B] {
	row, col := g.CellIndex(body)
	next := g.cells.Index(row, col)

	if next == previous {
		return next
	}

	at := -1
	for i, handle := range *previous {
		if handle == body {
			at = i
			break
		}
	}
	if at < 0 {
		if validate {
			raiseOutOfRange("Grid.UpdateBodyCell", "body not found in previous cell")
		}
		return next
	}

	old := *previous
	copy(old[at:], old[at+1:])
	old[len(old)-1] = nil
	*previous = old[:len(old)-1]

	*next = append(*next, body)
	return next
}

// ClearAllBodies empties every cell and resets the body count. Cell capacity
// is retained; the vacated slots are zeroed.
func (g *Grid[T, B]) ClearAllBodies() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells.Index(row, col)
			for i := range *cell {
				(*cell)[i] = nil
			}
			*cell = (*cell)[:0]
		}
	}
	g.numBodies = 0
}

// Neighbor offsets of the 1-ring around a cell, (row, col) deltas.
var adjacentOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// QueryDistance returns every other body whose Euclidean distance from body
// is at most distance, searching the body's own cell at (row, col) plus its
// in-bound 1-ring neighbors. The queried body is excluded from the result.
//
// Precondition: distance must not exceed the smaller cell dimension, or a
// matching body two cells away would be missed. The validated profile raises
// invalid-argument on violation; the performance profile can silently return
// an incomplete result.
func (g *Grid[T, B]) QueryDistance(body *B, row, col int, distance T) []*B {
	return g.QueryDistanceBuf(body, row, col, distance, nil)
}

// QueryDistanceBuf is QueryDistance appending into the caller's slice
// (truncated first). Reusing one buffer across many queries avoids a per-call
// allocation.
func (g *Grid[T, B]) QueryDistanceBuf(body *B, row, col int, distance T, buf []*B) []*B {
	g.checkQueryRadius("Grid.QueryDistance", distance)

	buf = buf[:0]
	center := g.position(body)
	distance2 := distance * distance

	for _, handle := range *g.cells.Index(row, col) {
		if handle == body {
			continue
		}
		if g.position(handle).Distance2(center) <= distance2 {
			buf = append(buf, handle)
		}
	}

	for _, offset := range adjacentOffsets {
		r, c := row+offset[0], col+offset[1]
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			continue
		}
		for _, handle := range *g.cells.Index(r, c) {
			if g.position(handle).Distance2(center) <= distance2 {
				buf = append(buf, handle)
			}
		}
	}
	return buf
}

// QueryDistancePair returns the set of unique unordered body pairs across the
// whole grid whose Euclidean distance is at most distance, under the same
// cell-size precondition as QueryDistance.
//
// The sweep visits every (row, col) with row >= 1 and col >= 1 and tests all
// pairs among the bodies of four cells: current, left, top and top-left. As
// the sweep advances, each unordered adjacency between two cells (horizontal,
// vertical and both diagonals) is covered by exactly one sweep position, and
// every cell appears as one of the four roles at some position, so within-cell
// pairs of row 0 and column 0 cells are captured when those cells serve as
// the left/top/top-left partner. A pair straddling a shared cell edge can
// still be discovered at two sweep positions; the PairSet result absorbs the
// redundancy instead of the sweep trying to avoid it.
func (g *Grid[T, B]) QueryDistancePair(distance T) *PairSet[B] {
	g.checkQueryRadius("Grid.QueryDistancePair", distance)

	distance2 := distance * distance
	result := NewPairSet[B]()

	var check []*B
	for row := 1; row < g.rows; row++ {
		for col := 1; col < g.cols; col++ {
			current := *g.cells.Index(row, col)
			left := *g.cells.Index(row, col-1)
			top := *g.cells.Index(row-1, col)
			topLeft := *g.cells.Index(row-1, col-1)

			if len(current)+len(left)+len(top)+len(topLeft) == 0 {
				continue
			}

			check = check[:0]
			check = append(check, current...)
			check = append(check, left...)
			check = append(check, top...)
			check = append(check, topLeft...)

			for i := 0; i < len(check); i++ {
				pi := g.position(check[i])
				for j := i + 1; j < len(check); j++ {
					if g.position(check[j]).Distance2(pi) <= distance2 {
						result.Add(check[i], check[j])
					}
				}
			}
		}
	}
	return result
}

func (g *Grid[T, B]) checkQueryRadius(op string, distance T) {
	if !validate {
		return
	}
	cellSize := g.CellSize()
	if distance > min(cellSize.X, cellSize.Y) {
		raiseInvalidArgument(op, "distance must not exceed the smaller cell dimension")
	}
}
