package mathutil

import "math"

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated a quarter turn clockwise in screen space (x right, y down),
// which is the camera-plane direction for a view direction v.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Floor splits v into its integer cell and fractional offset.
func (v Vec2) Floor() (cx, cy int, fx, fy float64) {
	flx, fly := math.Floor(v.X), math.Floor(v.Y)
	return int(flx), int(fly), v.X - flx, v.Y - fly
}
