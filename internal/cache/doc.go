// Package cache provides the bounded caches backing the renderers: a
// strict LRU cache (path geometry) and a FIFO cache (decoded images).
// Both are small, generic, and guarded by a mutex; the renderers mutate
// them only from the single rendering thread, the lock exists so that
// out-of-band decode completions can publish entries safely.
package cache
