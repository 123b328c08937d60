package driver

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of file results kept by NewCache(0).
const DefaultCacheSize = 1024

type cacheKey struct {
	path        string
	fingerprint uint64
}

// Cache keeps lint results keyed by path and content fingerprint, so an
// unchanged file is not analyzed again. It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, Result]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewCache creates a cache holding up to size results.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) get(key cacheKey) (Result, bool) {
	r, ok := c.entries.Get(key)
	if !ok {
		c.misses.Add(1)
		return Result{}, false
	}
	c.hits.Add(1)
	return r.clone(), true
}

func (c *Cache) add(key cacheKey, r Result) {
	c.entries.Add(key, r.clone())
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	c.entries.Purge()
}
