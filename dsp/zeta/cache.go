package zeta

import (
	"sync/atomic"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the evaluation cache capacity used by [New].
const DefaultCacheSize = 4096

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
	Capacity  int
}

// HitRatio returns Hits/(Hits+Misses), or 0 before any lookup.
func (s CacheStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a bounded LRU of evaluations keyed by quantized input.
// Entries never go stale because the series is pure; they only leave the
// cache through eviction or [Cache.Clear]. Safe for concurrent use.
type Cache struct {
	lru      *lru.Cache
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewCache returns a cache holding at most capacity entries.
func NewCache(capacity int) (*Cache, error) {
	if err := core.RequirePositive("zeta", "cache size", capacity); err != nil {
		return nil, err
	}

	l, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}

	return &Cache{lru: l, capacity: capacity}, nil
}

// Get returns the evaluation stored under key.
func (c *Cache) Get(key int64) (Evaluation, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return Evaluation{}, false
	}
	c.hits.Add(1)
	return v.(Evaluation), true
}

// Add stores ev under key, evicting the least recently used entry when
// full.
func (c *Cache) Add(key int64, ev Evaluation) {
	if c.lru.Add(key, ev) {
		c.evictions.Add(1)
	}
}

// Clear drops every entry. Counters are kept.
func (c *Cache) Clear() {
	c.lru.Purge()
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       c.lru.Len(),
		Capacity:  c.capacity,
	}
}
