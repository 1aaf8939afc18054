package sprites

import (
	"sync"

	"badc0de.net/pkg/pokeprint/locator"
)

// FrameCache memoizes decoded frames of one archive. It is owned by the
// caller and passed explicitly; there is no package-global cache. It
// lives for the process and holds every decoded frame until exit, which
// is fine for archives of small frames. Decode failures are not cached.
type FrameCache struct {
	mu      sync.Mutex
	archive *Archive
	frames  map[locator.SpriteKey]*Bitmap
}

// NewFrameCache creates a cache over the passed archive.
func NewFrameCache(a *Archive) *FrameCache {
	return &FrameCache{
		archive: a,
		frames:  make(map[locator.SpriteKey]*Bitmap),
	}
}

// Extract returns the frame for key, decoding it on first use. Callers
// must not mutate the returned bitmap.
func (c *FrameCache) Extract(key locator.SpriteKey) (*Bitmap, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if bm, ok := c.frames[key]; ok {
		return bm, nil
	}
	bm, err := c.archive.Extract(key)
	if err != nil {
		return nil, err
	}
	c.frames[key] = bm
	return bm, nil
}
