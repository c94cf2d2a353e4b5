package zeta

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheRejectsSize(t *testing.T) {
	_, err := NewCache(0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCacheEviction(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	c.Add(1, Evaluation{Value: 1})
	c.Add(2, Evaluation{Value: 2})
	_, ok := c.Get(1) // 1 becomes most recent
	require.True(t, ok)
	c.Add(3, Evaluation{Value: 3})

	_, ok = c.Get(2)
	assert.False(t, ok, "least recently used entry should be evicted")
	ev, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, 3.0, ev.Value)

	st := c.Stats()
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(1), st.Evictions)
	assert.Equal(t, 2, st.Len)
	assert.Equal(t, 2, st.Capacity)
	assert.InDelta(t, 2.0/3, st.HitRatio(), 1e-15)
}

func TestCacheClear(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	c.Add(1, Evaluation{Value: 1})
	c.Clear()

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Len)
	assert.Equal(t, uint64(0), c.Stats().Evictions, "clearing is not eviction")
	assert.Equal(t, 0.0, CacheStats{}.HitRatio())
}

func TestCacheConcurrentAccess(t *testing.T) {
	c, err := NewCache(64)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := int64((g*200 + i) % 100)
				c.Add(key, Evaluation{Value: float64(key)})
				if ev, ok := c.Get(key); ok {
					assert.Equal(t, float64(key), ev.Value)
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Stats().Len, 64)
}
