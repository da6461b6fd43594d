package chromo

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

const defaultCacheSize = 128

// ShapeCache memoizes Bounds by (Shape, library size), so that many
// chromosomes sharing a grid layout and kernel library don't each recompute
// the same lb/ub/gene-index tables. Grounded on the they4kman example's
// golang-lru dependency, repurposed here from its original use.
type ShapeCache struct {
	cache *lru.Cache
}

// NewShapeCache builds a ShapeCache holding up to size distinct shapes.
// size <= 0 selects a small default.
func NewShapeCache(size int) (*ShapeCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ShapeCache{cache: c}, nil
}

// Get returns cached Bounds for shape and librarySize, computing and storing
// them on a miss.
func (sc *ShapeCache) Get(shape Shape, librarySize int) (*Bounds, error) {
	key := shape.digest(librarySize)
	if v, ok := sc.cache.Get(key); ok {
		return v.(*Bounds), nil
	}
	b, err := NewBounds(shape, librarySize)
	if err != nil {
		return nil, err
	}
	sc.cache.Add(key, b)
	return b, nil
}

// Len reports how many distinct shapes are currently cached.
func (sc *ShapeCache) Len() int {
	return sc.cache.Len()
}

// Purge drops every cached entry.
func (sc *ShapeCache) Purge() {
	sc.cache.Purge()
}

var (
	sharedCache     *ShapeCache
	sharedCacheOnce sync.Once
)

// CachedBounds returns Bounds for shape and librarySize through a
// process-wide ShapeCache, so that constructing many expressions over the
// same grid shape (a population, a benchmark sweep, repeated CLI
// invocations) only pays for gene-index derivation once per distinct shape.
func CachedBounds(shape Shape, librarySize int) (*Bounds, error) {
	sharedCacheOnce.Do(func() {
		// defaultCacheSize is a positive constant, so NewShapeCache cannot fail here.
		sharedCache, _ = NewShapeCache(defaultCacheSize)
	})
	return sharedCache.Get(shape, librarySize)
}
