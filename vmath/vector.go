// Package vmath provides the 2D vector and rectangle math used for positions and collisions
package vmath

import "math"

// Vec2 is a real-valued 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied component-wise by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Magnitude returns the euclidean length of v
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Cell rounds v to the nearest terminal cell
func (v Vec2) Cell() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
