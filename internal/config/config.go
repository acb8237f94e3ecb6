package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths, render settings and controls.
type Config struct {
	// Paths
	BaseDir    string   `json:"-"`
	Level      string   `json:"level"`
	TextureDir string   `json:"texture_dir"`
	Textures   []string `json:"textures"`
	OutputDir  string   `json:"output_dir"`

	// Render settings
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	TextureSize    int    `json:"texture_size"`
	FloorTexture   *int   `json:"floor_texture"`
	CeilingTexture *int   `json:"ceiling_texture"`
	MaxSteps       int    `json:"max_steps"`
	Workers        int    `json:"workers"`
	ShadeSides     bool   `json:"shade_sides"`
	HorizonColor   string `json:"horizon_color"`
	Supersample    int    `json:"supersample"`
	Scale          int    `json:"scale"`

	// Camera and controls
	Camera      Camera  `json:"camera"`
	MoveSpeed   float64 `json:"move_speed"`
	TurnSpeed   float64 `json:"turn_speed"`
	Sensitivity float64 `json:"sensitivity"`

	// Flythrough
	FPS  int       `json:"fps"`
	Path []Segment `json:"path"`
}

// Camera is the starting pose.
type Camera struct {
	Pos *[2]float64 `json:"pos"`
	Dir *[2]float64 `json:"dir"`
	FOV float64     `json:"fov"`
}

// Segment is one leg of a scripted flythrough: for Frames frames, walk at
// Move×MoveSpeed, strafe at Strafe×MoveSpeed, turn in direction Turn (-1, 0, 1)
// and look by Look pointer pixels per frame.
type Segment struct {
	Frames int     `json:"frames"`
	Move   float64 `json:"move"`
	Strafe float64 `json:"strafe"`
	Turn   int     `json:"turn"`
	Look   int     `json:"look"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values; relative paths are
// resolved against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Level     string
	OutputDir string
	Width     int
	Height    int
	Workers   int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Level != "" {
		c.Level = flags.Level
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Resolve relative paths against base dir; flag values stay relative to cwd
	if c.BaseDir != "" {
		if c.Level != "" && flags.Level == "" && !filepath.IsAbs(c.Level) {
			c.Level = filepath.Join(c.BaseDir, c.Level)
		}
		if c.TextureDir != "" && !filepath.IsAbs(c.TextureDir) {
			c.TextureDir = filepath.Join(c.BaseDir, c.TextureDir)
		}
		if c.OutputDir != "" && flags.OutputDir == "" && !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.TextureSize <= 0 {
		c.TextureSize = 32
	}
	if c.FloorTexture == nil {
		c.FloorTexture = intPtr(0)
	}
	if c.CeilingTexture == nil {
		c.CeilingTexture = intPtr(6)
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = 256
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.HorizonColor == "" {
		c.HorizonColor = "000000"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}

	// Camera and controls
	if c.Camera.Pos == nil {
		c.Camera.Pos = &[2]float64{5.5, 5.5}
	}
	if c.Camera.Dir == nil {
		c.Camera.Dir = &[2]float64{-1, 0}
	}
	if c.Camera.FOV <= 0 {
		c.Camera.FOV = 66
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = 3
	}
	if c.TurnSpeed <= 0 {
		c.TurnSpeed = 2.5
	}
	if c.Sensitivity <= 0 {
		c.Sensitivity = 1
	}

	// Flythrough
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if len(c.Path) == 0 {
		c.Path = DefaultPath()
	}
}

// DefaultPath is a short tour of the built-in map.
func DefaultPath() []Segment {
	return []Segment{
		{Frames: 30, Turn: 1},
		{Frames: 20, Move: 1},
		{Frames: 45, Turn: -1},
		{Frames: 30, Move: 1, Strafe: 0.5},
		{Frames: 30, Look: 4},
		{Frames: 20, Move: -1},
	}
}

func intPtr(v int) *int {
	return &v
}
