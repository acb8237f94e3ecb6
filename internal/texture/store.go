package texture

import (
	"errors"
	"fmt"

	"tile-raycaster/internal/raster"
)

var (
	// ErrEmptyStore is returned when a store is built without textures.
	ErrEmptyStore = errors.New("texture: store is empty")
	// ErrTextureSize is returned for non-square or mismatched textures.
	ErrTextureSize = errors.New("texture: size mismatch")
)

// Store is an ordered, read-only set of equally sized square textures indexed
// by tile ID.
type Store struct {
	textures []*raster.PixelBuffer
	size     int
}

// NewStore validates that every texture is square and shares the first
// texture's size.
func NewStore(textures []*raster.PixelBuffer) (*Store, error) {
	if len(textures) == 0 {
		return nil, ErrEmptyStore
	}
	size := -1
	for i, t := range textures {
		if t == nil {
			return nil, fmt.Errorf("texture: slot %d is nil: %w", i, ErrTextureSize)
		}
		if t.Width != t.Height || t.Width == 0 {
			return nil, fmt.Errorf("texture: slot %d is %dx%d, want square: %w", i, t.Width, t.Height, ErrTextureSize)
		}
		if size < 0 {
			size = t.Width
		} else if t.Width != size {
			return nil, fmt.Errorf("texture: slot %d is %dx%d, want %dx%d: %w", i, t.Width, t.Height, size, size, ErrTextureSize)
		}
	}
	return &Store{textures: textures, size: size}, nil
}

// Len returns the number of textures.
func (s *Store) Len() int {
	return len(s.textures)
}

// Size returns the shared texture edge length.
func (s *Store) Size() int {
	return s.size
}

// Get returns texture i, or nil when i is out of range.
func (s *Store) Get(i int) *raster.PixelBuffer {
	if i < 0 || i >= len(s.textures) {
		return nil
	}
	return s.textures[i]
}

// Load resolves every name through l and builds a validated store.
func Load(l Loader, names []string) (*Store, error) {
	textures := make([]*raster.PixelBuffer, len(names))
	for i, name := range names {
		buf, err := l.Load(name)
		if err != nil {
			return nil, fmt.Errorf("texture: slot %d: %w", i, err)
		}
		textures[i] = buf
	}
	return NewStore(textures)
}
