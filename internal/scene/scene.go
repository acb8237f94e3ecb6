// Package scene assembles a renderable world from a resolved config: the
// level grid, the texture store, the engine and the starting camera pose.
package scene

import (
	"fmt"

	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/config"
	"tile-raycaster/internal/level"
	"tile-raycaster/internal/mathutil"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/raycast"
	"tile-raycaster/internal/texture"
)

// Scene is everything a frame needs besides the camera and destination.
// Grid may be edited between frames; Store and Engine are read-only.
type Scene struct {
	Grid   *level.Grid
	Store  *texture.Store
	Engine *raycast.Engine

	start camera.Camera
	fov   float64
}

// Build loads the level and textures named by cfg and validates them
// against each other. cfg must already be resolved.
func Build(cfg config.Config) (*Scene, error) {
	grid := level.DefaultGrid()
	if cfg.Level != "" {
		var err error
		grid, err = level.Load(cfg.Level)
		if err != nil {
			return nil, err
		}
	}

	store, err := texture.Load(Loader(cfg), TextureNames(cfg))
	if err != nil {
		return nil, err
	}

	horizon, err := raster.ParseHex(cfg.HorizonColor)
	if err != nil {
		return nil, fmt.Errorf("scene: horizon color: %w", err)
	}

	eng := raycast.New(raycast.Options{
		FloorTexture:   *cfg.FloorTexture,
		CeilingTexture: *cfg.CeilingTexture,
		MaxSteps:       cfg.MaxSteps,
		Workers:        cfg.Workers,
		ShadeSides:     cfg.ShadeSides,
		HorizonColor:   horizon,
	})
	if err := eng.Validate(grid, store); err != nil {
		return nil, err
	}

	pos := mathutil.Vec2{X: cfg.Camera.Pos[0], Y: cfg.Camera.Pos[1]}
	dir := mathutil.Vec2{X: cfg.Camera.Dir[0], Y: cfg.Camera.Dir[1]}
	if dir.Len() == 0 {
		return nil, fmt.Errorf("scene: camera direction is zero")
	}
	start := camera.New(pos, dir, cfg.Camera.FOV, cfg.Width, cfg.Height)

	return &Scene{
		Grid:   grid,
		Store:  store,
		Engine: eng,
		start:  *start,
		fov:    cfg.Camera.FOV,
	}, nil
}

// Loader picks the texture source: image files under TextureDir when set,
// otherwise procedural patterns.
func Loader(cfg config.Config) texture.Loader {
	if cfg.TextureDir == "" {
		return texture.Procedural{Size: cfg.TextureSize}
	}
	idx := texture.BuildIndex(cfg.TextureDir)
	return texture.NewCache(texture.FileLoader{Index: idx})
}

// TextureNames returns the configured names, or the built-in procedural set.
func TextureNames(cfg config.Config) []string {
	if len(cfg.Textures) > 0 {
		return cfg.Textures
	}
	return texture.DefaultNames
}

// Camera returns a fresh camera at the starting pose with a w×h viewport.
func (s *Scene) Camera(w, h int) *camera.Camera {
	return camera.New(s.start.Pos, s.start.Dir, s.fov, w, h)
}

// Render draws cam's view into dst.
func (s *Scene) Render(cam *camera.Camera, dst *raster.PixelBuffer) (raycast.Stats, error) {
	return s.Engine.Render(cam, s.Grid, s.Store, dst)
}
