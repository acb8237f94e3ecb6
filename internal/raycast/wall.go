package raycast

import (
	"math"

	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/level"
	"tile-raycaster/internal/mathutil"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/texture"
)

// minWallDist keeps the projected line height finite when the camera touches a wall.
const minWallDist = 1e-4

// Side names which grid line a ray crossed to reach its hit cell.
type Side int

const (
	SideX Side = iota // crossed a vertical (x) grid line
	SideY             // crossed a horizontal (y) grid line
)

// Hit describes the first wall a ray reached.
type Hit struct {
	MapX, MapY int
	Tile       uint32
	Side       Side
	Dist       float64 // perpendicular distance to the camera plane
	WallX      float64 // hit position along the wall face, in [0,1)
	Ray        mathutil.Vec2
	Steps      int
}

// CastRay walks the grid from pos along ray using DDA and returns the first
// nonzero tile. Cells outside the grid read as empty; the walk gives up once
// the ray has left the grid and is heading away from it, or after maxSteps
// cells. pos's own cell is never tested.
func CastRay(g *level.Grid, pos, ray mathutil.Vec2, maxSteps int) (Hit, bool) {
	if ray.X == 0 && ray.Y == 0 {
		return Hit{}, false
	}
	deltaX := mathutil.SafeInv(ray.X)
	deltaY := mathutil.SafeInv(ray.Y)

	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	var stepX, stepY int
	var sideX, sideY float64
	if ray.X < 0 {
		stepX = -1
		sideX = (pos.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - pos.X) * deltaX
	}
	if ray.Y < 0 {
		stepY = -1
		sideY = (pos.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - pos.Y) * deltaY
	}

	var side Side
	for steps := 1; steps <= maxSteps; steps++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideY += deltaY
			mapY += stepY
			side = SideY
		}

		if !g.In(mapX, mapY) {
			if leaving(mapX, stepX, g.Width) || leaving(mapY, stepY, g.Height) {
				return Hit{}, false
			}
			continue
		}
		tile := g.At(mapX, mapY)
		if tile == 0 {
			continue
		}

		var dist, wallX float64
		if side == SideX {
			dist = (float64(mapX) - pos.X + float64(1-stepX)/2) / ray.X
			wallX = pos.Y + dist*ray.Y
		} else {
			dist = (float64(mapY) - pos.Y + float64(1-stepY)/2) / ray.Y
			wallX = pos.X + dist*ray.X
		}
		wallX -= math.Floor(wallX)
		if wallX >= 1 {
			wallX = 0
		}

		return Hit{
			MapX:  mapX,
			MapY:  mapY,
			Tile:  tile,
			Side:  side,
			Dist:  dist,
			WallX: wallX,
			Ray:   ray,
			Steps: steps,
		}, true
	}
	return Hit{}, false
}

// leaving reports whether coordinate c is outside [0,n) and moving further out.
func leaving(c, step, n int) bool {
	return (c < 0 && step < 0) || (c >= n && step > 0)
}

// Slice is the screen-space extent of one wall column.
type Slice struct {
	LineHeight int
	DrawStart  int // clamped to the screen
	DrawEnd    int // exclusive
	TexStart   int // unclamped, for texture interpolation
	TexEnd     int
}

// ProjectSlice computes the wall slice for a perpendicular distance on a
// screen h rows tall.
func ProjectSlice(dist float64, h int) Slice {
	if dist < minWallDist {
		dist = minWallDist
	}
	lh := int(float64(h) / dist)
	s := Slice{
		LineHeight: lh,
		TexStart:   -lh/2 + h/2,
		TexEnd:     lh/2 + h/2,
	}
	s.DrawStart = max(s.TexStart, 0)
	s.DrawEnd = min(s.TexEnd, h)
	return s
}

// TexColumn returns the texture column for a hit, mirrored so textures read
// the same way from either side of a wall.
func TexColumn(hit Hit, texW int) int {
	col := int(math.Floor(hit.WallX * float64(texW)))
	if (hit.Side == SideX && hit.Ray.X > 0) || (hit.Side == SideY && hit.Ray.Y < 0) {
		col = texW - col - 1
	}
	return clampIndex(col, texW)
}

// TexRow maps a screen row inside a slice to a texture row.
func (s Slice) TexRow(row, texH int) int {
	span := s.TexEnd - s.TexStart
	if span <= 0 {
		span = 1
	}
	r := int(math.Floor(float64(row-s.TexStart) / float64(span) * float64(texH)))
	return clampIndex(r, texH)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// column casts the ray for screen column x and draws its wall slice.
func (e *Engine) column(x int, cam *camera.Camera, g *level.Grid, s *texture.Store, dst *raster.PixelBuffer, c *counters) {
	camX := 2*float64(x)/float64(cam.Width) - 1
	ray := cam.Dir.Add(cam.Plane.Scale(camX))

	hit, ok := CastRay(g, cam.Pos, ray, e.opts.MaxSteps)
	if !ok {
		c.misses.Add(1)
		return
	}
	c.hits.Add(1)

	tex := s.Get(int(hit.Tile))
	if tex == nil {
		c.badTiles.Add(1)
		return
	}

	sl := ProjectSlice(hit.Dist, cam.Height)
	texCol := TexColumn(hit, tex.Width)
	shade := e.opts.ShadeSides && hit.Side == SideY

	for row := sl.DrawStart; row < sl.DrawEnd; row++ {
		px := tex.At(sl.TexRow(row, tex.Height), texCol)
		if shade {
			px = raster.Darken(px)
		}
		dst.Set(row, x, px)
	}
}
