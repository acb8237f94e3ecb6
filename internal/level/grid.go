package level

import (
	"errors"
	"fmt"
)

var (
	// ErrTileRange is returned when a tile ID does not index the texture store.
	ErrTileRange = errors.New("level: tile out of range")
	// ErrShape is returned for empty or ragged grids.
	ErrShape = errors.New("level: bad grid shape")
)

// Grid is a rectangular map of tile IDs stored row-major.
// Tile 0 is empty; any other value is a wall and selects texture N.
type Grid struct {
	Width  int
	Height int
	Tiles  []uint32
}

// New returns an empty w×h grid.
func New(w, h int) *Grid {
	return &Grid{Width: w, Height: h, Tiles: make([]uint32, w*h)}
}

// FromRows copies a row-major [][]uint32 into a grid. All rows must have equal length.
func FromRows(rows [][]uint32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("level: empty grid: %w", ErrShape)
	}
	w := len(rows[0])
	g := New(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("level: row %d has %d tiles, want %d: %w", y, len(row), w, ErrShape)
		}
		copy(g.Tiles[y*w:], row)
	}
	return g, nil
}

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the tile at column x, row y. Out-of-bounds reads return 0.
func (g *Grid) At(x, y int) uint32 {
	if !g.In(x, y) {
		return 0
	}
	return g.Tiles[y*g.Width+x]
}

// Set stores a tile. It is meant for edits between frames.
func (g *Grid) Set(x, y int, tile uint32) error {
	if !g.In(x, y) {
		return fmt.Errorf("level: set (%d,%d) outside %dx%d grid", x, y, g.Width, g.Height)
	}
	g.Tiles[y*g.Width+x] = tile
	return nil
}

// Validate checks that every nonzero tile indexes a store of n textures.
func (g *Grid) Validate(n int) error {
	if g.Width <= 0 || g.Height <= 0 || len(g.Tiles) != g.Width*g.Height {
		return fmt.Errorf("level: %dx%d grid with %d tiles: %w", g.Width, g.Height, len(g.Tiles), ErrShape)
	}
	for i, t := range g.Tiles {
		if t != 0 && int64(t) >= int64(n) {
			return fmt.Errorf("level: tile %d at (%d,%d) with %d textures: %w", t, i%g.Width, i/g.Width, n, ErrTileRange)
		}
	}
	return nil
}

// Closed reports whether every border cell is a wall, which guarantees that
// any ray cast from inside the grid hits something.
func (g *Grid) Closed() bool {
	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) == 0 || g.At(x, g.Height-1) == 0 {
			return false
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(0, y) == 0 || g.At(g.Width-1, y) == 0 {
			return false
		}
	}
	return true
}

// MaxTile returns the largest tile ID in the grid.
func (g *Grid) MaxTile() uint32 {
	var m uint32
	for _, t := range g.Tiles {
		if t > m {
			m = t
		}
	}
	return m
}
