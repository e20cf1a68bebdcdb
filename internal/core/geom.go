// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Position is a point in arena coordinates.
// The arena origin is the top-left corner; y grows downward.
type Position struct {
	X, Y float64
}

// NewPosition creates a position at (x, y).
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Bounds describes the size of the arena in floating-point units.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (b Bounds) Center() Position {
	return Position{X: b.Width / 2, Y: b.Height / 2}
}

// Direction is a cardinal facing.
type Direction int

const (
	West Direction = iota
	North
	East
	South
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// RestrictToBounds keeps a position inside the arena.
// Horizontal movement wraps around; vertical movement is clamped to the walls.
func RestrictToBounds(pos *Position, b Bounds) {
	if pos.X < 0 {
		pos.X = b.Width
	} else if b.Width-pos.X <= 0 {
		pos.X = 0
	}

	if pos.Y < 0 {
		pos.Y = 0
	} else if b.Height-pos.Y <= 0 {
		pos.Y = b.Height
	}
}

// Circle is a collision shape centered on a position.
type Circle struct {
	Center Position
	Radius float64
}

// Overlaps reports whether two circles touch or intersect.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.DistanceTo(other.Center) <= c.Radius+other.Radius
}

// Rect represents an axis-aligned bounding box in screen cells.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
