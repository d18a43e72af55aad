// Package physics provides collision detection utilities.
package physics

// Rect is an axis-aligned rectangle in logical pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate one past the rectangle's right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the rectangle center, truncated to whole pixels.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectsOverlap checks if two rectangles intersect.
// Rectangles that only share an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}
