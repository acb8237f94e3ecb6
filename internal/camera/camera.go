// Package camera holds the first-person view state consumed by the raycaster:
// world position, view direction, camera plane and viewport size.
//
// Dir and Plane stay perpendicular; every rotation is applied to both so their
// lengths (and thus the field of view) never change.
package camera

import (
	"math"

	"tile-raycaster/internal/mathutil"
)

// Camera is mutated by input between frames and read by the renderer.
type Camera struct {
	Pos   mathutil.Vec2
	Dir   mathutil.Vec2
	Plane mathutil.Vec2

	Width  int
	Height int
}

// New builds a camera looking along dir with a horizontal field of view in
// degrees. The plane keeps |dir| so |plane|/|dir| = tan(fov/2).
func New(pos, dir mathutil.Vec2, fovDeg float64, width, height int) *Camera {
	half := math.Tan(mathutil.Deg2Rad(fovDeg) / 2)
	return &Camera{
		Pos:    pos,
		Dir:    dir,
		Plane:  dir.Perp().Scale(half),
		Width:  width,
		Height: height,
	}
}

// FOV returns the horizontal field of view in degrees.
func (c *Camera) FOV() float64 {
	d := c.Dir.Len()
	if d == 0 {
		return 0
	}
	return 2 * math.Atan(c.Plane.Len()/d) * 180 / math.Pi
}

// Move advances along Dir by dt*speed; negative speed walks backwards.
// There is no collision check.
func (c *Camera) Move(dt, speed float64) {
	c.Pos = c.Pos.Add(c.Dir.Scale(dt * speed))
}

// Strafe slides sideways along the camera plane, normalized to |Dir|.
func (c *Camera) Strafe(dt, speed float64) {
	side := c.Plane.Normalize().Scale(c.Dir.Len())
	c.Pos = c.Pos.Add(side.Scale(dt * speed))
}

// Turn rotates by turnSpeed·direction·dt radians. direction is -1 or +1.
func (c *Camera) Turn(dt float64, direction int, turnSpeed float64) {
	c.RotateBy(turnSpeed * float64(direction) * dt)
}

// Rotate is the pointer-look variant: rate is a pointer delta in pixels.
func (c *Camera) Rotate(dt float64, rate int, sensitivity float64) {
	c.RotateBy(float64(rate) * sensitivity * dt)
}

// RotateBy rotates Dir and Plane by angle radians.
func (c *Camera) RotateBy(angle float64) {
	if angle == 0 {
		return
	}
	r := mathutil.NewRot2(angle)
	c.Dir = r.Apply(c.Dir)
	c.Plane = r.Apply(c.Plane)
}
