// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
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

// Span is a horizontal interval in field units, starting at X with width W.
type Span struct {
	X float64
	W float64
}

// Right returns the end of the interval.
func (s Span) Right() float64 {
	return s.X + s.W
}

// Overlap returns the width of the intersection of two spans.
// The result is negative when the spans do not intersect; its magnitude is
// then the size of the gap between them.
func (s Span) Overlap(other Span) float64 {
	return min(s.Right(), other.Right()) - max(s.X, other.X)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
