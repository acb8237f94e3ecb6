// Package termview presents frames on a terminal. Each character cell shows
// two pixel rows with an upper half block: foreground is the top pixel and
// background the bottom one.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"tile-raycaster/internal/raster"
	"tile-raycaster/internal/scene"
)

const halfBlock = '▀'

var statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).
	Foreground(tcell.ColorWhite)

// Presenter draws pixel buffers onto a tcell screen. The bottom cell row is
// kept for a status line.
type Presenter struct {
	screen tcell.Screen
}

// New wraps an initialized screen.
func New(s tcell.Screen) *Presenter {
	s.HideCursor()
	return &Presenter{screen: s}
}

// Viewport is the pixel size a frame should have to fill the screen.
func (p *Presenter) Viewport() (w, h int) {
	cols, rows := p.screen.Size()
	return max(cols, 1), max(rows-1, 1) * 2
}

// Draw copies buf into the cell grid. Pixels past the screen are clipped and
// cells past the buffer are left alone. Call Show to flush.
func (p *Presenter) Draw(buf *raster.PixelBuffer) {
	cols, rows := p.screen.Size()
	w := min(cols, buf.Width)
	cells := min(rows-1, (buf.Height+1)/2)
	for cy := 0; cy < cells; cy++ {
		top := buf.Row(cy * 2)
		var bottom []uint32
		if cy*2+1 < buf.Height {
			bottom = buf.Row(cy*2 + 1)
		}
		for x := 0; x < w; x++ {
			bg := tcell.ColorBlack
			if bottom != nil {
				bg = Color(bottom[x])
			}
			style := tcell.StyleDefault.Foreground(Color(top[x])).Background(bg)
			p.screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
}

// Status writes text on the bottom row, clearing the rest of it.
func (p *Presenter) Status(text string) {
	cols, rows := p.screen.Size()
	if rows < 1 {
		return
	}
	x := 0
	for _, r := range text {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, rows-1, r, nil, statusStyle)
		x++
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, rows-1, ' ', nil, statusStyle)
	}
}

// Show flushes pending cells to the terminal.
func (p *Presenter) Show() {
	p.screen.Show()
}

// Color converts a packed pixel to a terminal true color; alpha is ignored.
func Color(px uint32) tcell.Color {
	r, g, b, _ := raster.Unpack(px)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// KeyControls maps a key press to one frame of input: arrows or W/A/S/D walk
// and turn, Q/E strafe. ok is false for keys with no movement meaning.
func KeyControls(ev *tcell.EventKey) (c scene.Controls, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		c.Forward = true
	case tcell.KeyDown:
		c.Back = true
	case tcell.KeyLeft:
		c.Left = true
	case tcell.KeyRight:
		c.Right = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			c.Forward = true
		case 's', 'S':
			c.Back = true
		case 'a', 'A':
			c.Left = true
		case 'd', 'D':
			c.Right = true
		case 'q', 'Q':
			c.StrafeL = true
		case 'e', 'E':
			c.StrafeR = true
		default:
			return c, false
		}
	default:
		return c, false
	}
	return c, true
}
