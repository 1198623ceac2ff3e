package cache

import "sync"

// FIFO is a generic bounded cache with insertion-order eviction: when an
// insert pushes the cache over capacity, the single oldest-inserted entry
// is dropped. Lookups do not affect eviction order.
//
// FIFO is safe for concurrent use and must not be copied after creation.
type FIFO[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]V
	order    []K
	capacity int
}

// NewFIFO creates a FIFO cache holding at most capacity entries.
// A capacity <= 0 is treated as 1.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &FIFO[K, V]{
		entries:  make(map[K]V),
		capacity: capacity,
	}
}

// Get retrieves a cached value by key.
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value. Replacing an existing key keeps its original
// insertion position. Inserting a new key over capacity evicts the
// oldest-inserted entry.
func (c *FIFO[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}

	c.entries[key] = value
	c.order = append(c.order, key)

	if len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Contains reports whether key is cached.
func (c *FIFO[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Delete removes an entry. Returns true if the entry was present.
func (c *FIFO[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all entries from the cache.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]V)
	c.order = nil
}

// Len returns the number of entries in the cache.
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *FIFO[K, V]) Capacity() int {
	return c.capacity
}
