// Package core holds the engine-agnostic types shared by the game, the
// physics engine and the terminal front end. It imports nothing from Bubble
// Tea so gameplay code stays testable without a terminal.
package core

import "math"

// Rect is an integer cell rectangle used for drawing.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) with size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or direction in world units. One unit is one terminal
// cell; y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }

// Len returns the euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen scales v down so its length does not exceed max.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Box is an axis-aligned rectangle in world units anchored at its top-left
// corner.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt builds a box of size w×h centred on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the midpoint of the box.
func (b Box) Center() Vec2 { return Vec2{b.X + b.W/2, b.Y + b.H/2} }

// Contains reports whether p lies inside b. Edges on the right and bottom
// are exclusive.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Intersects reports whether the interiors of the two boxes overlap.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Inside reports whether o lies entirely within b.
func (b Box) Inside(o Box) bool {
	return o.X >= b.X && o.Y >= b.Y && o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// Cells returns the integer cell rectangle covered by b.
func (b Box) Cells() Rect {
	x0 := int(math.Floor(b.X))
	y0 := int(math.Floor(b.Y))
	x1 := int(math.Ceil(b.Right()))
	y1 := int(math.Ceil(b.Bottom()))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// SnapCenter moves centre c down to the nearest value at which a span of
// size starts on a whole cell.
func SnapCenter(c, size float64) float64 {
	return math.Floor(c-size/2) + size/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
