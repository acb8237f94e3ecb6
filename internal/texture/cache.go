package texture

import (
	"sync"

	"tile-raycaster/internal/raster"
)

// Cache is a concurrency-safe memoizing Loader. Several store slots may name
// the same file; it is decoded once.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]*cacheEntry
	loader Loader
}

type cacheEntry struct {
	buf *raster.PixelBuffer
	err error
}

// NewCache wraps l.
func NewCache(l Loader) *Cache {
	return &Cache{
		items:  make(map[string]*cacheEntry),
		loader: l,
	}
}

// Load returns the cached result for name, loading it on first use.
// Failures are cached too.
func (c *Cache) Load(name string) (*raster.PixelBuffer, error) {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[name]; exists {
		c.mu.RUnlock()
		return entry.buf, entry.err
	}
	c.mu.RUnlock()

	buf, err := c.loader.Load(name)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[name]; exists {
		return entry.buf, entry.err
	}
	c.items[name] = &cacheEntry{buf: buf, err: err}
	return buf, err
}
