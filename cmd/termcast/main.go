package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"tile-raycaster/internal/config"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/scene"
	"tile-raycaster/internal/termview"
)

// Frame tick; each key press also moves the camera by one tick.
const tick = 33 * time.Millisecond

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	levelFile := flag.String("level", "", "Level file, .json or text (default: built-in map)")
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
	cfg.Resolve(config.Flags{Level: *levelFile, Workers: *workers})

	sc, err := scene.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start tcell: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init tcell.Screen: %v\n", err)
		os.Exit(1)
	}

	err = run(screen, sc, scene.SpeedsFrom(cfg))
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, sc *scene.Scene, sp scene.Speeds) error {
	p := termview.New(screen)
	w, h := p.Viewport()
	cam := sc.Camera(w, h)
	buf := raster.NewPixelBuffer(w, h)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if c, ok := termview.KeyControls(ev); ok {
					c.Apply(cam, tick.Seconds(), sp)
				}
			case *tcell.EventResize:
				screen.Sync()
				w, h = p.Viewport()
				cam.Width, cam.Height = w, h
				buf = raster.NewPixelBuffer(w, h)
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			st, err := sc.Render(cam, buf)
			if err != nil {
				return err
			}
			p.Draw(buf)
			p.Status(fmt.Sprintf("pos %.2f,%.2f  %dx%d  %.0f fps  misses %d  [arrows/WASD, Esc quits]",
				cam.Pos.X, cam.Pos.Y, w, h, 1/dt, st.Misses))
			p.Show()
		}
	}
}
