package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/postprocess"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/raycast"
	"tile-raycaster/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Workers     int

	// Progress, when non-zero, prints a rate line at this interval.
	Progress time.Duration
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Image   string
	Stats   raycast.Stats
	Success bool
	Error   string
}

// FrameName is the file name of frame i relative to the output directory.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

// Run renders all poses using a worker pool. The scene is shared read-only;
// every worker owns its destination buffers.
func Run(cfg Config, poses []Pose) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}

	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk := newWorker(cfg)
			for idx := range frameChan {
				results[idx] = wk.processFrame(cfg, poses[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range poses {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// worker holds the per-goroutine render targets.
type worker struct {
	cam *camera.Camera
	buf *raster.PixelBuffer
	img *image.NRGBA
}

func newWorker(cfg Config) *worker {
	w, h := cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample
	return &worker{
		cam: cfg.Scene.Camera(w, h),
		buf: raster.NewPixelBuffer(w, h),
		img: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

func (wk *worker) processFrame(cfg Config, pose Pose) Result {
	res := Result{Frame: pose.Frame, Image: FrameName(pose.Frame)}

	wk.cam.Pos, wk.cam.Dir, wk.cam.Plane = pose.Pos, pose.Dir, pose.Plane
	st, err := cfg.Scene.Render(wk.cam, wk.buf)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Stats = st

	wk.buf.Bytes(wk.img.Pix)
	img := wk.img

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	// Save as WebP
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
