package raster

import (
	"fmt"
	"image"
)

// PixelBuffer is a fixed-size grid of packed RGBA pixels stored as a flat slice
// for cache locality. Pixel (row, col) lives at Pix[row*Width+col].
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewPixelBuffer allocates a zeroed w×h buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("raster: negative buffer size %dx%d", w, h))
	}
	return &PixelBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}
}

// At returns the pixel at (row, col).
func (b *PixelBuffer) At(row, col int) uint32 {
	return b.Pix[row*b.Width+col]
}

// Set stores the pixel at (row, col).
func (b *PixelBuffer) Set(row, col int, c uint32) {
	b.Pix[row*b.Width+col] = c
}

// Row returns the backing slice for one row.
func (b *PixelBuffer) Row(row int) []uint32 {
	off := row * b.Width
	return b.Pix[off : off+b.Width]
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c uint32) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// FillRow sets every pixel in one row to c.
func (b *PixelBuffer) FillRow(row int, c uint32) {
	r := b.Row(row)
	for i := range r {
		r[i] = c
	}
}

// Pitch is the byte stride of one row in the flattened output.
func (b *PixelBuffer) Pitch() int {
	return b.Width * 4
}

// Bytes flattens the buffer into dst as R,G,B,A bytes, row-major, top row first.
// dst is reused when it has enough capacity.
func (b *PixelBuffer) Bytes(dst []byte) []byte {
	n := len(b.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range b.Pix {
		o := i * 4
		dst[o] = uint8(p >> 24)
		dst[o+1] = uint8(p >> 16)
		dst[o+2] = uint8(p >> 8)
		dst[o+3] = uint8(p)
	}
	return dst
}

// NRGBA copies the buffer into a new image for encoders.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	b.Bytes(img.Pix)
	return img
}

// FromNRGBA packs an RGBA surface into a new buffer, reading each pixel at
// offset = row*stride + col*4.
func FromNRGBA(img *image.NRGBA) *PixelBuffer {
	r := img.Rect
	w, h := r.Dx(), r.Dy()
	buf := NewPixelBuffer(w, h)
	stride := img.Stride
	for y := 0; y < h; y++ {
		off := y * stride
		row := buf.Row(y)
		for x := 0; x < w; x++ {
			i := off + x*4
			row[x] = Pack(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
		}
	}
	return buf
}
