package game

import "math"

// Vector2i is an integer position in arena coordinates
type Vector2i struct {
	X, Y int
}

// Add returns the component-wise sum
func (v Vector2i) Add(o Vector2i) Vector2i {
	return Vector2i{X: v.X + o.X, Y: v.Y + o.Y}
}

// DistanceTo returns the Euclidean distance between two points
func (v Vector2i) DistanceTo(o Vector2i) float64 {
	dx := float64(o.X - v.X)
	dy := float64(o.Y - v.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox is an axis-aligned rectangle; W and H are always positive
type BoundingBox struct {
	X, Y int
	W, H int
}

// NewBoundingBox creates a box at pos with the given size
func NewBoundingBox(pos Vector2i, w, h int) BoundingBox {
	return BoundingBox{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Intersects reports whether the two rectangles overlap on both axes.
// Touching edges do not count as an overlap.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Center returns the center point, rounded toward the origin like the sprite math
func (b BoundingBox) Center() Vector2i {
	return Vector2i{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// clamp limits v to [lo, hi]
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
