package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSolid(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	out := Downsample(solid(8, 6, c), 4, 3)
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 3 {
		t.Fatalf("size = %v", out.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := out.NRGBAAt(x, y)
			if diff(got.R, c.R) > 1 || diff(got.G, c.G) > 1 || diff(got.B, c.B) > 1 || got.A != 255 {
				t.Fatalf("(%d,%d) = %v, want ~%v", x, y, got, c)
			}
		}
	}
}

func TestDownsampleTranslucentEdge(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{})

	got := Downsample(img, 1, 1).NRGBAAt(0, 0)
	if got.R < 250 || got.G > 5 || got.B > 5 {
		t.Errorf("colour = %v, want undarkened red", got)
	}
	if got.A < 100 || got.A > 155 {
		t.Errorf("alpha = %d, want about half", got.A)
	}
}

func TestDownsampleNoop(t *testing.T) {
	img := solid(4, 4, color.NRGBA{A: 255})
	if Downsample(img, 4, 4) != img {
		t.Error("same-size downsample should return the input")
	}
}

func TestUpscaleNearest(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	out := Upscale(img, 3)
	if out.Bounds().Dx() != 6 || out.Bounds().Dy() != 3 {
		t.Fatalf("size = %v", out.Bounds())
	}
	if out.NRGBAAt(2, 2).R != 255 || out.NRGBAAt(3, 0).B != 255 {
		t.Errorf("nearest sampling broke texel edges: %v %v", out.NRGBAAt(2, 2), out.NRGBAAt(3, 0))
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
