package scene

import (
	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/config"
)

// Controls is one frame's worth of player input, independent of the device
// it came from.
type Controls struct {
	Forward, Back    bool
	Left, Right      bool
	StrafeL, StrafeR bool

	// LookDX is pointer motion in pixels, positive to the right.
	LookDX int
}

// Speeds scales Controls into camera motion.
type Speeds struct {
	Move        float64
	Turn        float64
	Sensitivity float64
}

// SpeedsFrom reads the control speeds from a resolved config.
func SpeedsFrom(cfg config.Config) Speeds {
	return Speeds{Move: cfg.MoveSpeed, Turn: cfg.TurnSpeed, Sensitivity: cfg.Sensitivity}
}

// Apply advances cam by one frame of input lasting dt seconds.
func (c Controls) Apply(cam *camera.Camera, dt float64, sp Speeds) {
	if c.Forward {
		cam.Move(dt, sp.Move)
	}
	if c.Back {
		cam.Move(dt, -sp.Move)
	}
	if c.StrafeL {
		cam.Strafe(dt, -sp.Move)
	}
	if c.StrafeR {
		cam.Strafe(dt, sp.Move)
	}
	// Grid y grows downwards, so a positive angle turns right.
	if c.Left {
		cam.Turn(dt, -1, sp.Turn)
	}
	if c.Right {
		cam.Turn(dt, 1, sp.Turn)
	}
	if c.LookDX != 0 {
		cam.Rotate(dt, c.LookDX, sp.Sensitivity)
	}
}
