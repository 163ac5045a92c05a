package vmath

// Rect is an axis-aligned box in screen space, X/Y at the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// CenteredRect builds a box of size w×h centered on (cx, cy)
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether r and o intersect once both extents are widened by buffer
// Boxes separated by less than buffer on both axes collide; the test is symmetric
func (r Rect) Overlaps(o Rect, buffer float64) bool {
	return r.X < o.X+o.W+buffer && r.X+r.W+buffer > o.X &&
		r.Y < o.Y+o.H+buffer && r.Y+r.H+buffer > o.Y
}
