// Package core provides the shared primitives of the game: geometry, input
// actions, the character screen and runtime configuration. It has no
// dependency on any frontend so simulation code stays pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned bounding box in world units, anchored at its top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxAround creates a box of half-extents (hw, hh) centered on c.
func BoxAround(c Vec2, hw, hh float64) Box {
	return Box{X: c.X - hw, Y: c.Y - hh, W: hw * 2, H: hh * 2}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Rect represents an integer rectangle in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
