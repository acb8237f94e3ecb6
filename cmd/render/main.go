package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tile-raycaster/internal/config"
	"tile-raycaster/internal/mathutil"
	"tile-raycaster/internal/postprocess"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	levelFile := flag.String("level", "", "Level file, .json or text (default: built-in map)")
	output := flag.String("output", "frame.webp", "Output image, .webp or .png")
	width := flag.Int("width", 0, "Frame width (default: 320)")
	height := flag.Int("height", 0, "Frame height (default: 240)")
	workers := flag.Int("workers", 0, "Render goroutines (default: NumCPU)")
	yaw := flag.Float64("yaw", 0, "Turn the start camera by this many degrees")

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
	if !sc.Grid.Closed() {
		fmt.Println("Warning: level border is open, rays may escape")
	}

	ss := cfg.Supersample
	cam := sc.Camera(cfg.Width*ss, cfg.Height*ss)
	cam.RotateBy(mathutil.Deg2Rad(*yaw))
	buf := raster.NewPixelBuffer(cam.Width, cam.Height)

	start := time.Now()
	st, err := sc.Render(cam, buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	img := buf.NRGBA()
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	img = postprocess.Upscale(img, cfg.Scale)

	if err := save(*output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Level: %dx%d, Textures: %d (%dpx)\n", sc.Grid.Width, sc.Grid.Height, sc.Store.Len(), sc.Store.Size())
	fmt.Printf("Frame: %dx%d (x%d supersample) in %s\n", cfg.Width, cfg.Height, ss, elapsed.Round(time.Microsecond))
	fmt.Printf("Columns: %d, Hits: %d, Misses: %d, Bad tiles: %d\n", st.Columns, st.Hits, st.Misses, st.BadTiles)
	fmt.Printf("Output: %s\n", *output)
}

func save(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		return png.Encode(f, img)
	}
	return nativewebp.Encode(f, img, nil)
}
