package raster

import (
	"fmt"
	"strconv"
	"strings"
)

// Pack combines 8-bit channels into the engine's pixel format (R high byte, A low byte).
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpack splits a packed pixel into its channels.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Darken halves the color channels and keeps alpha.
func Darken(p uint32) uint32 {
	return (p>>1)&0x7F7F7F00 | p&0xFF
}

// Opaque black, used for rows nothing is projected onto.
const Black = uint32(0x000000FF)

// ParseHex parses RRGGBB (opaque) or RRGGBBAA into a packed pixel.
func ParseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return 0, fmt.Errorf("raster: bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("raster: bad color %q: %w", s, err)
	}
	if len(s) == 6 {
		return uint32(v)<<8 | 0xFF, nil
	}
	return uint32(v), nil
}
