package codec

import (
	"sync"

	"github.com/ironsheep/rastertool/internal/raster"
)

// Cache provides thread-safe caching of decoded rasters to avoid redundant
// disk reads.
//
// Rasters are keyed by the exact path string passed to Load, so a relative
// and an absolute path to the same file occupy separate entries. Cached
// rasters are immutable and may be shared freely between callers.
//
// Entries stay in memory until Evict or Clear is called.
type Cache struct {
	mu      sync.RWMutex
	rasters map[string]*raster.Raster
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		rasters: make(map[string]*raster.Raster),
	}
}

// Load returns the cached raster for path, decoding it on first use.
// Decode failures are returned and not cached.
func (c *Cache) Load(path string) (*raster.Raster, error) {
	c.mu.RLock()
	if r, ok := c.rasters[path]; ok {
		c.mu.RUnlock()
		Logger().Debug("cache hit", "path", path)
		return r, nil
	}
	c.mu.RUnlock()

	r, err := Decode(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.rasters[path] = r
	c.mu.Unlock()

	return r, nil
}

// Evict removes path from the cache. It is a no-op for unknown paths.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.rasters, path)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.rasters = make(map[string]*raster.Raster)
	c.mu.Unlock()
}

// Len returns the number of cached rasters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rasters)
}
