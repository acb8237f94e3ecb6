package camera

import (
	"math"
	"math/rand"
	"testing"

	"tile-raycaster/internal/mathutil"
)

func TestMoveScaling(t *testing.T) {
	c := &Camera{Pos: mathutil.Vec2{X: 1, Y: 2}, Dir: mathutil.Vec2{X: 1, Y: 0}}
	c.Move(0.5, 10.0)
	if c.Pos != (mathutil.Vec2{X: 6, Y: 2}) {
		t.Errorf("Pos = %+v, want {6 2}", c.Pos)
	}

	before := c.Pos
	c.Move(0, 10.0)
	if c.Pos != before {
		t.Errorf("Move with dt=0 changed Pos to %+v", c.Pos)
	}

	c.Move(0.5, -10.0)
	if c.Pos != (mathutil.Vec2{X: 1, Y: 2}) {
		t.Errorf("backwards Pos = %+v, want {1 2}", c.Pos)
	}
}

func TestRotationPreservesInvariants(t *testing.T) {
	c := &Camera{
		Pos:   mathutil.Vec2{X: 5.5, Y: 5.5},
		Dir:   mathutil.Vec2{X: -0.66, Y: 0},
		Plane: mathutil.Vec2{X: 0, Y: 0.66},
	}
	dirLen, planeLen := c.Dir.Len(), c.Plane.Len()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		dt := rng.Float64() / 30
		if i%2 == 0 {
			dir := 1
			if rng.Intn(2) == 0 {
				dir = -1
			}
			c.Turn(dt, dir, 10.0)
		} else {
			c.Rotate(dt, rng.Intn(41)-20, 1.0)
		}
	}

	const eps = 1e-9
	if !mathutil.ApproxEqual(c.Dir.Len(), dirLen, eps) {
		t.Errorf("|dir| drifted: %v -> %v", dirLen, c.Dir.Len())
	}
	if !mathutil.ApproxEqual(c.Plane.Len(), planeLen, eps) {
		t.Errorf("|plane| drifted: %v -> %v", planeLen, c.Plane.Len())
	}
	if d := c.Dir.Dot(c.Plane); math.Abs(d) > eps {
		t.Errorf("dir·plane = %v, want ~0", d)
	}
}

func TestTurnAndRotateAgree(t *testing.T) {
	a := &Camera{Dir: mathutil.Vec2{X: 1}, Plane: mathutil.Vec2{Y: 0.66}}
	b := *a
	a.Turn(0.1, -1, 2.0)
	b.Rotate(0.1, -4, 0.5)
	if !mathutil.ApproxEqual(a.Dir.X, b.Dir.X, 1e-12) || !mathutil.ApproxEqual(a.Plane.Y, b.Plane.Y, 1e-12) {
		t.Errorf("Turn %+v != Rotate %+v", a, b)
	}
}

func TestNewFOV(t *testing.T) {
	c := New(mathutil.Vec2{X: 1.5, Y: 1.5}, mathutil.Vec2{X: 1}, 90, 320, 240)
	if !mathutil.ApproxEqual(c.Plane.X, 0, 1e-12) || !mathutil.ApproxEqual(c.Plane.Y, 1, 1e-12) {
		t.Errorf("Plane = %+v, want {0 1}", c.Plane)
	}
	if !mathutil.ApproxEqual(c.FOV(), 90, 1e-9) {
		t.Errorf("FOV = %v, want 90", c.FOV())
	}
}

func TestStrafe(t *testing.T) {
	c := &Camera{Dir: mathutil.Vec2{X: 1}, Plane: mathutil.Vec2{Y: 0.66}}
	c.Strafe(1, 2)
	if !mathutil.ApproxEqual(c.Pos.Y, 2, 1e-12) || c.Pos.X != 0 {
		t.Errorf("Pos = %+v, want {0 2}", c.Pos)
	}
}
