package batch

import (
	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/config"
	"tile-raycaster/internal/mathutil"
	"tile-raycaster/internal/scene"
)

// Pose is the camera state for one output frame.
type Pose struct {
	Frame int
	Time  float64
	Pos   mathutil.Vec2
	Dir   mathutil.Vec2
	Plane mathutil.Vec2
}

// Plan integrates path at a fixed frame rate starting from start, which is
// not modified. Frame 0 is the start pose; each later frame applies one
// step of its segment's controls. Integration is sequential so the poses
// do not depend on how the frames are later scheduled.
func Plan(start *camera.Camera, path []config.Segment, fps int, sp scene.Speeds) []Pose {
	if fps <= 0 {
		fps = 30
	}
	dt := 1 / float64(fps)
	cam := *start

	total := 1
	for _, seg := range path {
		total += max(seg.Frames, 0)
	}
	poses := make([]Pose, 0, total)
	poses = append(poses, poseOf(0, dt, &cam))

	for _, seg := range path {
		for i := 0; i < seg.Frames; i++ {
			step(&cam, seg, dt, sp)
			poses = append(poses, poseOf(len(poses), dt, &cam))
		}
	}
	return poses
}

func step(cam *camera.Camera, seg config.Segment, dt float64, sp scene.Speeds) {
	if seg.Move != 0 {
		cam.Move(dt, seg.Move*sp.Move)
	}
	if seg.Strafe != 0 {
		cam.Strafe(dt, seg.Strafe*sp.Move)
	}
	scene.Controls{
		Left:   seg.Turn < 0,
		Right:  seg.Turn > 0,
		LookDX: seg.Look,
	}.Apply(cam, dt, sp)
}

func poseOf(frame int, dt float64, cam *camera.Camera) Pose {
	return Pose{
		Frame: frame,
		Time:  float64(frame) * dt,
		Pos:   cam.Pos,
		Dir:   cam.Dir,
		Plane: cam.Plane,
	}
}
