package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"tile-raycaster/internal/raster"
)

// Loader resolves a texture name to a decoded pixel buffer.
type Loader interface {
	Load(name string) (*raster.PixelBuffer, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(name string) (*raster.PixelBuffer, error)

func (f LoaderFunc) Load(name string) (*raster.PixelBuffer, error) {
	return f(name)
}

// FileLoader decodes image files from disk. Names are looked up in Index
// first and fall back to being used as paths.
type FileLoader struct {
	Index *Index
}

// Load implements Loader.
func (l FileLoader) Load(name string) (*raster.PixelBuffer, error) {
	path := name
	if l.Index != nil {
		if p, ok := l.Index.ResolvePath(name); ok {
			path = p
		}
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return raster.FromNRGBA(img), nil
}

// LoadImage reads a PNG, JPEG, GIF, BMP, WebP or TGA file and returns an NRGBA image.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	// TGA has no magic number, so it cannot go through image.Decode sniffing.
	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = tga.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
