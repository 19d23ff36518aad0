package spatial

import "math"

// Vector2 is a 2D coordinate. It is a plain value type: arithmetic returns
// new values and == compares component-wise.
type Vector2[T float32 | float64] struct {
	X T
	Y T
}

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vector2[T]) Scale(scalar T) Vector2[T] {
	return Vector2[T]{X: v.X * scalar, Y: v.Y * scalar}
}

// CwiseMul returns the component-wise product of v and other.
func (v Vector2[T]) CwiseMul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * other.X, Y: v.Y * other.Y}
}

// CwiseDiv returns the component-wise quotient of v and other.
// A zero component in other is an invalid argument in the validated profile.
func (v Vector2[T]) CwiseDiv(other Vector2[T]) Vector2[T] {
	if validate && (other.X == 0 || other.Y == 0) {
		raiseInvalidArgument("Vector2.CwiseDiv", "divisor must not have a zero component")
	}
	return Vector2[T]{X: v.X / other.X, Y: v.Y / other.Y}
}

// Dot returns the dot product of v and other.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Distance returns the Euclidean distance ||other - v||. It costs a square
// root per call; prefer Distance2 when comparing against a threshold.
func (v Vector2[T]) Distance(other Vector2[T]) T {
	return T(math.Hypot(float64(other.X-v.X), float64(other.Y-v.Y)))
}

// Distance2 returns the squared distance ||other - v||^2.
func (v Vector2[T]) Distance2(other Vector2[T]) T {
	dx := other.X - v.X
	dy := other.Y - v.Y
	return dx*dx + dy*dy
}
