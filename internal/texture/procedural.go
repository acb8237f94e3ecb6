package texture

import (
	"errors"
	"fmt"
	"strings"

	"tile-raycaster/internal/raster"
)

// ErrUnknownPattern is returned for procedural names with an unknown kind.
var ErrUnknownPattern = errors.New("texture: unknown pattern")

// Procedural builds synthetic textures from names of the form
// "kind:RRGGBB[:RRGGBB]". Kinds: solid, checker, brick, grid, stripes.
type Procedural struct {
	Size int
}

// DefaultNames is a seven-slot set laid out like the built-in map expects:
// floor, five wall materials, ceiling.
var DefaultNames = []string{
	"checker:3d6b2f:4f7f3a",
	"brick:8b5a2b:4a3020",
	"stripes:a02020:401010",
	"grid:d8a830:6b5010",
	"brick:9a9a9a:5a5a5a",
	"checker:2f4fa0:1f2f70",
	"grid:c8e0f0:a0c0e0",
}

// Load implements Loader.
func (p Procedural) Load(name string) (*raster.PixelBuffer, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("texture: procedural size %d", p.Size)
	}
	parts := strings.Split(name, ":")
	colors := make([]uint32, 0, 2)
	for _, hex := range parts[1:] {
		c, err := raster.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("texture: procedural %q: %w", name, err)
		}
		colors = append(colors, c)
	}
	for len(colors) < 2 {
		colors = append(colors, raster.Black)
	}
	a, b := colors[0], colors[1]
	n := p.Size
	buf := raster.NewPixelBuffer(n, n)

	var at func(row, col int) uint32
	switch parts[0] {
	case "solid":
		at = func(int, int) uint32 { return a }
	case "checker":
		cell := max(n/4, 1)
		at = func(row, col int) uint32 {
			if (row/cell+col/cell)%2 == 0 {
				return a
			}
			return b
		}
	case "brick":
		h := max(n/4, 2)
		w := max(n/2, 2)
		at = func(row, col int) uint32 {
			course := row / h
			shift := 0
			if course%2 == 1 {
				shift = w / 2
			}
			if row%h == 0 || (col+shift)%w == 0 {
				return b
			}
			return a
		}
	case "grid":
		cell := max(n/4, 2)
		at = func(row, col int) uint32 {
			if row%cell == 0 || col%cell == 0 {
				return b
			}
			return a
		}
	case "stripes":
		w := max(n/8, 1)
		at = func(_, col int) uint32 {
			if (col/w)%2 == 0 {
				return a
			}
			return b
		}
	default:
		return nil, fmt.Errorf("texture: %q: %w", name, ErrUnknownPattern)
	}

	for row := 0; row < n; row++ {
		r := buf.Row(row)
		for col := range r {
			r[col] = at(row, col)
		}
	}
	return buf, nil
}
