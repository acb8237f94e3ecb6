// Package raycast renders a textured first-person view of a tile grid into a
// pixel buffer: a floor/ceiling pass by row back-projection, then one DDA ray
// per screen column for the walls.
//
// The engine keeps no state between frames. Camera, grid and textures are
// borrowed read-only for one Render call; the destination is written in place.
package raycast

import (
	"errors"
	"fmt"
	"sync/atomic"

	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/level"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/texture"
)

// DefaultMaxSteps bounds DDA traversal per ray.
const DefaultMaxSteps = 256

var (
	// ErrViewport is returned when the destination does not match the camera viewport.
	ErrViewport = errors.New("raycast: destination size does not match viewport")
	// ErrMaterial is returned when the floor or ceiling index is not in the store.
	ErrMaterial = errors.New("raycast: floor/ceiling texture out of range")
)

// Options configures an Engine.
type Options struct {
	FloorTexture   int
	CeilingTexture int

	// MaxSteps bounds grid cells visited per ray; rays that exhaust it or
	// leave the grid for good count as misses.
	MaxSteps int

	// Workers > 1 splits rows and columns across goroutines.
	Workers int

	// ShadeSides draws walls hit on a y-side at half brightness.
	ShadeSides bool

	// HorizonColor fills rows the floor projection cannot reach.
	HorizonColor uint32
}

// DefaultOptions matches the built-in seven-texture layout.
func DefaultOptions() Options {
	return Options{
		FloorTexture:   0,
		CeilingTexture: 6,
		MaxSteps:       DefaultMaxSteps,
		Workers:        1,
		HorizonColor:   raster.Black,
	}
}

// Stats counts what happened during one frame.
type Stats struct {
	Columns     int // wall columns cast
	Hits        int // columns that found a wall
	Misses      int // columns whose ray found nothing within bounds
	BadTiles    int // hits on a tile ID with no texture
	HorizonRows int // rows filled with HorizonColor
}

type counters struct {
	hits, misses, badTiles atomic.Int64
}

// Engine is a stateless renderer; one value may serve many frames.
type Engine struct {
	opts Options
}

// New returns an engine, defaulting MaxSteps and Workers when unset.
func New(opts Options) *Engine {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultMaxSteps
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Engine{opts: opts}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// Validate checks the load-time preconditions: every wall tile and the floor
// and ceiling materials must index the store. Call it once before rendering.
func (e *Engine) Validate(g *level.Grid, s *texture.Store) error {
	if s.Get(e.opts.FloorTexture) == nil {
		return fmt.Errorf("raycast: floor texture %d with %d textures: %w", e.opts.FloorTexture, s.Len(), ErrMaterial)
	}
	if s.Get(e.opts.CeilingTexture) == nil {
		return fmt.Errorf("raycast: ceiling texture %d with %d textures: %w", e.opts.CeilingTexture, s.Len(), ErrMaterial)
	}
	return g.Validate(s.Len())
}

// Render draws one frame of cam's view into dst, which must be
// cam.Width×cam.Height. Geometry problems never fail the frame; they are
// reported in Stats.
func (e *Engine) Render(cam *camera.Camera, g *level.Grid, s *texture.Store, dst *raster.PixelBuffer) (Stats, error) {
	if dst.Width != cam.Width || dst.Height != cam.Height {
		return Stats{}, fmt.Errorf("raycast: dst %dx%d, viewport %dx%d: %w", dst.Width, dst.Height, cam.Width, cam.Height, ErrViewport)
	}
	var st Stats
	if cam.Width == 0 || cam.Height == 0 {
		return st, nil
	}

	st.HorizonRows = e.floorCeiling(cam, s, dst)

	var c counters
	e.split(cam.Width, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			e.column(x, cam, g, s, dst, &c)
		}
	})

	st.Columns = cam.Width
	st.Hits = int(c.hits.Load())
	st.Misses = int(c.misses.Load())
	st.BadTiles = int(c.badTiles.Load())
	return st, nil
}
