package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/scene"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestViewport(t *testing.T) {
	p := New(simScreen(t, 40, 13))
	w, h := p.Viewport()
	if w != 40 || h != 24 {
		t.Errorf("Viewport = %dx%d, want 40x24", w, h)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	screen := simScreen(t, 8, 4)
	p := New(screen)

	red := raster.Pack(255, 0, 0, 255)
	blue := raster.Pack(0, 0, 255, 255)
	buf := raster.NewPixelBuffer(3, 5)
	for row := 0; row < buf.Height; row++ {
		c := red
		if row%2 == 1 {
			c = blue
		}
		buf.FillRow(row, c)
	}
	p.Draw(buf)

	for cy := 0; cy < 3; cy++ {
		for x := 0; x < 3; x++ {
			mainc, _, style, _ := screen.GetContent(x, cy)
			if mainc != halfBlock {
				t.Fatalf("cell (%d,%d) = %q, want half block", x, cy, mainc)
			}
			fg, bg, _ := style.Decompose()
			wantBg := Color(blue)
			if cy == 2 {
				// odd height: last cell row has no bottom pixel
				wantBg = tcell.ColorBlack
			}
			if fg != Color(red) || bg != wantBg {
				t.Errorf("cell (%d,%d) fg=%v bg=%v", x, cy, fg, bg)
			}
		}
	}

	// Column past the buffer stays untouched
	if mainc, _, _, _ := screen.GetContent(3, 0); mainc == halfBlock {
		t.Error("drew past buffer width")
	}
}

func TestStatus(t *testing.T) {
	screen := simScreen(t, 6, 3)
	p := New(screen)
	p.Status("hello world")

	want := "hello "
	for x, r := range want {
		if mainc, _, _, _ := screen.GetContent(x, 2); mainc != r {
			t.Errorf("status[%d] = %q, want %q", x, mainc, r)
		}
	}
}

func TestKeyControls(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want scene.Controls
		ok   bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), scene.Controls{Forward: true}, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), scene.Controls{Back: true}, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), scene.Controls{Left: true}, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), scene.Controls{Right: true}, true},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), scene.Controls{Forward: true}, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), scene.Controls{Left: true}, true},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), scene.Controls{Right: true}, true},
		{"e", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), scene.Controls{StrafeR: true}, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), scene.Controls{}, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), scene.Controls{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyControls(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("KeyControls = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestColor(t *testing.T) {
	got := Color(raster.Pack(0x12, 0x34, 0x56, 0x00))
	if want := tcell.NewRGBColor(0x12, 0x34, 0x56); got != want {
		t.Errorf("Color = %v, want %v", got, want)
	}
}
