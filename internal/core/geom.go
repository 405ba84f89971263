// Package core provides fundamental geometry types and utilities for the
// crossing game. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in virtual canvas pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Intersects returns true if this rectangle overlaps with another.
// Overlap is strict: rectangles that merely touch along an edge do not
// intersect. The same policy is used for collision and goal detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// IntersectsInclusive is the inclusive-overlap variant of Intersects:
// rectangles touching along an edge count as overlapping.
func (r Rect) IntersectsInclusive(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Translate returns a copy of the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// WrapX advances the left edge of a moving rectangle by speed and wraps it
// around the canvas horizontally. A rectangle leaving on the right re-enters
// fully off-screen on the left (left edge = -w) so it reappears gradually
// instead of popping into view; the rule is symmetric for leftward motion.
func WrapX(x, speed, w, canvasW int) int {
	nx := x + speed
	if speed > 0 && nx >= canvasW {
		return -w
	}
	if speed < 0 && nx+w <= 0 {
		return canvasW
	}
	return nx
}

// WrapXSnap is the snap-to-edge wrap variant: a rectangle leaving on one
// side reappears with its near edge exactly on the opposite boundary.
func WrapXSnap(x, speed, w, canvasW int) int {
	nx := x + speed
	if speed > 0 && nx >= canvasW {
		return 0
	}
	if speed < 0 && nx+w <= 0 {
		return canvasW - w
	}
	return nx
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampRectX clamps the rectangle horizontally so it lies fully inside
// [0, canvasW].
func ClampRectX(r Rect, canvasW int) Rect {
	r.X = Clamp(r.X, 0, canvasW-r.W)
	return r
}

// ClampRectY clamps the rectangle vertically so it lies fully inside
// [0, canvasH].
func ClampRectY(r Rect, canvasH int) Rect {
	r.Y = Clamp(r.Y, 0, canvasH-r.H)
	return r
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
