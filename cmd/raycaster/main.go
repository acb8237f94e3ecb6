package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tile-raycaster/internal/config"
	"tile-raycaster/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	levelFile := flag.String("level", "", "Level file, .json or text (default: built-in map)")
	width := flag.Int("width", 0, "Render width (default: 320)")
	height := flag.Int("height", 0, "Render height (default: 240)")
	workers := flag.Int("workers", 0, "Render goroutines (default: NumCPU)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Level:   *levelFile,
		Width:   *width,
		Height:  *height,
		Workers: *workers,
	})

	sc, err := scene.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	scale := max(cfg.Scale, 2)
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetWindowTitle("Tile Raycaster")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	game := NewGame(sc, scene.SpeedsFrom(cfg), cfg.Width, cfg.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
