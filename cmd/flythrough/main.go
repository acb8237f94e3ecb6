package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tile-raycaster/internal/batch"
	"tile-raycaster/internal/config"
	"tile-raycaster/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	levelFile := flag.String("level", "", "Level file, .json or text (default: built-in map)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	width := flag.Int("width", 0, "Frame width (default: 320)")
	height := flag.Int("height", 0, "Frame height (default: 240)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only first N frames for testing")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Level:     *levelFile,
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		Workers:   *workers,
	})

	// Frames render in parallel; keep each frame on one goroutine
	poolSize := cfg.Workers
	cfg.Workers = 1

	sc, err := scene.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	poses := batch.Plan(sc.Camera(cfg.Width, cfg.Height), cfg.Path, cfg.FPS, scene.SpeedsFrom(cfg))

	// Limit for testing
	if *testN > 0 && *testN < len(poses) {
		poses = poses[:*testN]
	}

	fmt.Printf("Raycaster flythrough → WebP\n")
	fmt.Printf("Frames: %d at %d fps, %dx%d, Workers: %d\n", len(poses), cfg.FPS, cfg.Width, cfg.Height, poolSize)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Scene:       sc,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     poolSize,
		Progress:    2 * time.Second,
	}, poses)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, misses := 0, 0
	var failed []batch.Result
	for _, r := range results {
		misses += r.Stats.Misses
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(poses))
	if misses > 0 {
		fmt.Printf("Columns with no wall: %d\n", misses)
	}

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, poses, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
