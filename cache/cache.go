// Package cache provides a bounded, concurrency-safe LRU cache.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 512

// entry is a single cached key/value pair held in the eviction list.
type entry[V any] struct {
	key   string
	value V
}

// LRU is a bounded in-memory cache with least-recently-used eviction.
// All methods are safe for concurrent use.
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	eviction *list.List

	hits      int64
	misses    int64
	evictions int64
}

// New creates an LRU cache holding at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func New[V any](capacity int) *LRU[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// Get retrieves a value from the cache, marking it most recently used.
func (c *LRU[V]) Get(key string) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		c.misses++
		getCacheMetrics().missesTotal.Inc()
		return value, false
	}

	c.eviction.MoveToFront(elem)
	c.hits++
	getCacheMetrics().hitsTotal.Inc()

	return elem.Value.(*entry[V]).value, true
}

// Set stores a value in the cache, evicting the least-recently-used
// entry if the cache is at capacity. Setting an existing key updates
// its value and marks it most recently used.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		c.eviction.MoveToFront(elem)
		elem.Value.(*entry[V]).value = value
		return
	}

	elem := c.eviction.PushFront(&entry[V]{key: key, value: value})
	c.items[key] = elem

	for c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	getCacheMetrics().sizeGauge.Set(float64(c.eviction.Len()))
}

// Delete removes a value from the cache.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		c.removeElement(elem)
	}
}

// Len returns the current number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Cap returns the cache capacity.
func (c *LRU[V]) Cap() int {
	return c.capacity
}

// Stats contains cache statistics.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int64
}

// Stats returns a snapshot of cache statistics.
func (c *LRU[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      int64(c.eviction.Len()),
	}
}

// evictOldest removes the oldest entry from the cache.
// Must be called with lock held.
func (c *LRU[V]) evictOldest() {
	elem := c.eviction.Back()
	if elem != nil {
		c.removeElement(elem)
		c.evictions++
		getCacheMetrics().evictionsTotal.Inc()
	}
}

// removeElement removes an element from the cache.
// Must be called with lock held.
func (c *LRU[V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*entry[V]).key)
	getCacheMetrics().sizeGauge.Set(float64(c.eviction.Len()))
}
