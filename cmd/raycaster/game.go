package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tile-raycaster/internal/camera"
	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/scene"
)

// Game adapts the scene to ebiten's update/draw loop. The engine writes into
// buf, which is flattened into pix and uploaded to frame every draw.
type Game struct {
	scene  *scene.Scene
	cam    *camera.Camera
	speeds scene.Speeds

	buf   *raster.PixelBuffer
	pix   []byte
	frame *ebiten.Image
	err   error

	mouseX   int
	mouseSet bool
	hud      bool
}

// NewGame creates a w×h game viewing sc from its start pose.
func NewGame(sc *scene.Scene, sp scene.Speeds, w, h int) *Game {
	buf := raster.NewPixelBuffer(w, h)
	return &Game{
		scene:  sc,
		cam:    sc.Camera(w, h),
		speeds: sp,
		buf:    buf,
		pix:    buf.Bytes(nil),
		frame:  ebiten.NewImage(w, h),
		hud:    true,
	}
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1 / float64(ebiten.TPS())
	g.controls().Apply(g.cam, dt, g.speeds)
	return nil
}

// controls reads the keyboard and the horizontal cursor motion since the
// previous tick.
func (g *Game) controls() scene.Controls {
	c := scene.Controls{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		StrafeL: ebiten.IsKeyPressed(ebiten.KeyQ),
		StrafeR: ebiten.IsKeyPressed(ebiten.KeyE),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.hud = !g.hud
	}

	x, _ := ebiten.CursorPosition()
	if g.mouseSet {
		c.LookDX = x - g.mouseX
	}
	g.mouseX, g.mouseSet = x, true
	return c
}

func (g *Game) Draw(screen *ebiten.Image) {
	st, err := g.scene.Render(g.cam, g.buf)
	if err != nil {
		g.err = err
		return
	}
	g.pix = g.buf.Bytes(g.pix)
	g.frame.WritePixels(g.pix)
	screen.DrawImage(g.frame, nil)

	if g.hud {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f  pos %.2f,%.2f  misses %d",
			ebiten.ActualFPS(), g.cam.Pos.X, g.cam.Pos.Y, st.Misses))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.buf.Width, g.buf.Height
}
