package schema

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity is the resolution cache's default entry count, per
// §4.4.
const DefaultCacheCapacity = 1000

// A ResolutionCache memoizes Resolver lookups by QualifiedName.
// It is the one mutable structure shared across a conversion run's
// resolution steps (§5); since a run is single-threaded, it needs no
// locking.
type ResolutionCache struct {
	lru     *lru.Cache[QualifiedName, cacheEntry]
	Hits    int
	Misses  int
}

type cacheEntry struct {
	entry RegistryEntry
	found bool
}

// NewResolutionCache returns a cache holding at most capacity entries. A
// non-positive capacity falls back to DefaultCacheCapacity.
func NewResolutionCache(capacity int) *ResolutionCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c, _ := lru.New[QualifiedName, cacheEntry](capacity)
	return &ResolutionCache{lru: c}
}

// get returns a cached lookup result for qn, reporting whether the cache
// held an entry at all (not whether the underlying resolution succeeded).
func (c *ResolutionCache) get(qn QualifiedName) (cacheEntry, bool) {
	v, ok := c.lru.Get(qn)
	if ok {
		c.Hits++
	} else {
		c.Misses++
	}
	return v, ok
}

func (c *ResolutionCache) put(qn QualifiedName, entry cacheEntry) {
	c.lru.Add(qn, entry)
}
