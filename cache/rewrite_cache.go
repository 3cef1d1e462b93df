// Package cache provides an LRU cache of named-placeholder rewrites keyed
// by SQL fingerprint, so repeated statement preparation skips re-parsing.
package cache

import (
	"hash/fnv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/corvid-labs/sqlbind/rewrite"
)

// DefaultSize is the cache capacity used when none is given.
const DefaultSize = 256

// RewriteCache memoizes rewrite results. Cached statements are immutable
// and shared between callers. All methods are safe for concurrent use.
type RewriteCache struct {
	cache *lru.Cache[uint64, *rewrite.Statement]
	mu    sync.RWMutex
}

// New creates a rewrite cache holding at most size statements. A size
// below 1 falls back to DefaultSize.
func New(size int) *RewriteCache {
	if size < 1 {
		size = DefaultSize
	}
	c, _ := lru.New[uint64, *rewrite.Statement](size)
	return &RewriteCache{cache: c}
}

// Get returns the rewritten statement for sql, parsing on miss. The
// 64-bit key makes colliding texts indistinguishable; callers feed a
// finite statement vocabulary, not arbitrary input.
func (c *RewriteCache) Get(sql string) *rewrite.Statement {
	key := Fingerprint(sql)

	// Fast path: read lock only.
	c.mu.RLock()
	if st, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		return st
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if st, ok := c.cache.Get(key); ok {
		return st
	}
	st := rewrite.Parse(sql)
	c.cache.Add(key, st)
	return st
}

// Len returns the number of cached statements.
func (c *RewriteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Purge empties the cache.
func (c *RewriteCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}

// Fingerprint returns the FNV-64a hash of the SQL text.
func Fingerprint(sql string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(sql))
	return h.Sum64()
}
