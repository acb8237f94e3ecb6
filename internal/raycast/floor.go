package raycast

import (
	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/mathutil"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/texture"
)

// RowDistance is the world distance to the floor seen at screen row y of a
// screen h rows tall. It is negative above the horizon; ok is false on the
// horizon row itself, where the distance is infinite.
func RowDistance(y, h int) (dist float64, ok bool) {
	p := y - h/2
	if p == 0 {
		return 0, false
	}
	return 0.5 * float64(h) / float64(p), true
}

// FloorTexCoord maps a floor point to texel coordinates inside its tile.
// Only the fractional part of p matters, so the texture repeats every tile.
func FloorTexCoord(p mathutil.Vec2, size int) (tx, ty int) {
	_, _, fx, fy := p.Floor()
	n := float64(size)
	return int(n*fx) % size, int(n*fy) % size
}

// floorCeiling fills the whole buffer: rows below the horizon get floor
// texels, their mirrors above get ceiling texels, and the remaining rows get
// HorizonColor. It returns the number of horizon rows.
func (e *Engine) floorCeiling(cam *camera.Camera, s *texture.Store, dst *raster.PixelBuffer) int {
	w, h := cam.Width, cam.Height
	mid := h / 2

	horizon := []int{mid}
	if m := h - 1 - mid; m != mid {
		horizon = append(horizon, m)
	}
	for _, row := range horizon {
		dst.FillRow(row, e.opts.HorizonColor)
	}

	floor := s.Get(e.opts.FloorTexture)
	ceil := s.Get(e.opts.CeilingTexture)
	if floor == nil || ceil == nil {
		for y := 0; y < h; y++ {
			dst.FillRow(y, e.opts.HorizonColor)
		}
		return h
	}
	size := s.Size()

	ray0 := cam.Dir.Sub(cam.Plane)
	ray1 := cam.Dir.Add(cam.Plane)
	span := ray1.Sub(ray0).Scale(1 / float64(w))

	first := mid + 1
	e.split(h-first, func(lo, hi int) {
		for y := first + lo; y < first+hi; y++ {
			rd, ok := RowDistance(y, h)
			if !ok {
				continue
			}
			step := span.Scale(rd)
			pos := cam.Pos.Add(ray0.Scale(rd))

			floorRow := dst.Row(y)
			ceilRow := dst.Row(h - 1 - y)
			for x := 0; x < w; x++ {
				tx, ty := FloorTexCoord(pos, size)
				floorRow[x] = floor.Texel(ty, tx)
				ceilRow[x] = ceil.Texel(ty, tx)

				pos = pos.Add(step)
			}
		}
	})
	return len(horizon)
}
