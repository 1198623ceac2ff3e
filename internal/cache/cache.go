package cache

import "sync"

// LRU is a generic bounded cache with strict least-recently-used
// eviction: Get refreshes recency, and inserting beyond capacity evicts
// exactly the least-recently-accessed entry (not merely the oldest
// inserted one).
//
// LRU is safe for concurrent use and must not be copied after creation.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruEntry[K, V]
	lru      lruList[K]
	capacity int
}

// lruEntry holds a cached value with its recency-list node.
type lruEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewLRU creates an LRU cache holding at most capacity entries.
// A capacity <= 0 is treated as 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruEntry[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a cached value by key and refreshes its recency.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(entry.node)
	return entry.value, true
}

// Put stores a value. If the key exists its value is replaced and its
// recency refreshed; otherwise the entry is inserted and, when the cache
// is over capacity, the least-recently-used entry is evicted.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.lru.MoveToFront(existing.node)
		return
	}

	node := c.lru.PushFront(key)
	c.entries[key] = &lruEntry[K, V]{value: value, node: node}

	for c.lru.Len() > c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
}

// GetOrCreate returns the cached value for key, creating and inserting it
// via create on a miss. The hit path refreshes recency, so repeated
// lookups for the same key return the identical value until eviction.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.lru.MoveToFront(entry.node)
		return entry.value
	}

	value := create()
	node := c.lru.PushFront(key)
	c.entries[key] = &lruEntry[K, V]{value: value, node: node}

	for c.lru.Len() > c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}

	return value
}

// Contains reports whether key is cached, without refreshing recency.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Delete removes an entry. Returns true if the entry was present.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruEntry[K, V])
	c.lru.Clear()
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}
