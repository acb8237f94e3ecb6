package raster

// Texel returns the texel at (row, col) with both coordinates wrapped into the
// buffer, so out-of-range lookups tile instead of panicking.
func (b *PixelBuffer) Texel(row, col int) uint32 {
	row %= b.Height
	if row < 0 {
		row += b.Height
	}
	col %= b.Width
	if col < 0 {
		col += b.Width
	}
	return b.Pix[row*b.Width+col]
}
