package spatial

// Rect is an axis-aligned rectangle given by its top-left position and a
// non-negative size.
type Rect[T float32 | float64] struct {
	Position Vector2[T]
	Size     Vector2[T]
}

// NewRect builds a Rect from a position and a size. A negative size component
// is an invalid argument in the validated profile.
func NewRect[T float32 | float64](position, size Vector2[T]) Rect[T] {
	if validate && (size.X < 0 || size.Y < 0) {
		raiseInvalidArgument("NewRect", "size components must be non-negative")
	}
	return Rect[T]{Position: position, Size: size}
}

// RectFromEdges builds a Rect spanning [left, right] x [top, bottom].
func RectFromEdges[T float32 | float64](left, top, right, bottom T) Rect[T] {
	return Rect[T]{
		Position: Vector2[T]{X: left, Y: top},
		Size:     Vector2[T]{X: right - left, Y: bottom - top},
	}
}

func (r Rect[T]) Left() T   { return r.Position.X }
func (r Rect[T]) Top() T    { return r.Position.Y }
func (r Rect[T]) Right() T  { return r.Position.X + r.Size.X }
func (r Rect[T]) Bottom() T { return r.Position.Y + r.Size.Y }

// Contains reports whether point lies inside r, edges included.
func (r Rect[T]) Contains(point Vector2[T]) bool {
	return r.Left() <= point.X && point.X <= r.Right() &&
		r.Top() <= point.Y && point.Y <= r.Bottom()
}
