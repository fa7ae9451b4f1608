package translator

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type lruStore[V any] interface {
	Get(key string) (V, bool)
	Add(key string, value V) bool
	Purge()
	Len() int
}

// Cache memoizes values by exact key with a bounded, least-recently-used
// eviction policy. A Cache with capacity zero stores nothing.
type Cache[V any] struct {
	store lruStore[V]
}

// NewCache creates a cache holding at most size entries. A positive ttl
// also expires entries by age; such a cache owns a sweeper goroutine that
// lives as long as the process, so build one per translator and never per
// request.
func NewCache[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		return &Cache[V]{}
	}
	if ttl > 0 {
		return &Cache[V]{store: expirable.NewLRU[string, V](size, nil, ttl)}
	}
	store, err := lru.New[string, V](size)
	if err != nil {
		// lru.New only fails for a non-positive size.
		return &Cache[V]{}
	}
	return &Cache[V]{store: store}
}

// GetOrCompute returns the cached value for key, calling compute and
// storing its result on a miss. The second result reports a hit.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) (V, bool) {
	if c == nil || c.store == nil {
		return compute(), false
	}
	if v, ok := c.store.Get(key); ok {
		return v, true
	}
	v := compute()
	c.store.Add(key, v)
	return v, false
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	if c != nil && c.store != nil {
		c.store.Purge()
	}
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	if c == nil || c.store == nil {
		return 0
	}
	return c.store.Len()
}
