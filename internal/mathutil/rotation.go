package mathutil

import "math"

// Rot2 is a 2×2 rotation stored as its cosine and sine.
type Rot2 struct {
	Cos, Sin float64
}

// NewRot2 returns the rotation for angle a in radians.
func NewRot2(a float64) Rot2 {
	s, c := math.Sincos(a)
	return Rot2{Cos: c, Sin: s}
}

// Apply rotates v: x' = x·cos − y·sin, y' = x·sin + y·cos.
func (r Rot2) Apply(v Vec2) Vec2 {
	return Vec2{
		v.X*r.Cos - v.Y*r.Sin,
		v.X*r.Sin + v.Y*r.Cos,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
