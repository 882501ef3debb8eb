// Package core provides fundamental types and utilities shared by the game
// core and the platform shell. It has no external dependencies (especially
// no Bubble Tea) so game logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle used by the screen buffer for
// cell-level drawing.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether this rectangle overlaps another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a float64 axis-aligned rectangle used by the simulation.
// World coordinates are continuous; the screen buffer quantizes them
// only at render time.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a float rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles overlap using the half-open
// convention: edges that merely touch do not overlap.
func (r RectF) Overlaps(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// ContainsX reports whether the horizontal span of the rectangle contains x.
func (r RectF) ContainsX(x float64) bool {
	return x >= r.X && x < r.Right()
}

// Clamp restricts an integer to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
