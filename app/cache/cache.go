package cache

import (
	"log"
	"sync"
	"time"
)

// Package cache provides a size-accounted LRU cache for query results.
// Keys carry the dataset content hash, so results from a replaced dataset
// can never be served; a load additionally clears the cache outright.

// DefaultMaxSize is the default cache size limit (100MB)
const DefaultMaxSize = 100 * 1024 * 1024

// Entry is one cached query result.
type Entry struct {
	Value      interface{}
	Size       int64
	CreateTime time.Time
}

// Stats contains cache counters for diagnostics.
type Stats struct {
	Entries   int
	TotalSize int64
	MaxSize   int64
	Hits      int64
	Misses    int64
}

// Cache is a thread-safe LRU cache with a byte-size budget.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*Entry
	lru       *lruList
	totalSize int64
	maxSize   int64
	hits      int64
	misses    int64
}

// New creates a cache with the given size limit in bytes. Limits of zero
// or below fall back to DefaultMaxSize.
func New(maxSize int64) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache{
		entries: make(map[string]*Entry),
		lru:     newLRUList(),
		maxSize: maxSize,
	}
}

// Get returns the cached value for key, if any.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.lru.Touch(key)
	return entry.Value, true
}

// Store inserts a value with an estimated byte size, evicting the least
// recently used entries until the cache fits its budget. Values larger
// than the whole budget are not cached.
func (c *Cache) Store(key string, value interface{}, size int64) {
	if size > c.maxSize {
		log.Printf("[CACHE_SKIP] entry too large (%d bytes > %d limit): %s", size, c.maxSize, key)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		c.totalSize -= old.Size
	}

	c.entries[key] = &Entry{Value: value, Size: size, CreateTime: time.Now()}
	c.lru.Touch(key)
	c.totalSize += size

	for c.totalSize > c.maxSize {
		oldest := c.lru.RemoveOldest()
		if oldest == "" {
			break
		}
		if victim, ok := c.entries[oldest]; ok {
			c.totalSize -= victim.Size
			delete(c.entries, oldest)
			log.Printf("[CACHE_EVICT] %s (%d bytes)", oldest, victim.Size)
		}
	}
}

// Clear drops every entry. Called after each successful dataset load.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry)
	c.lru = newLRUList()
	c.totalSize = 0
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries:   len(c.entries),
		TotalSize: c.totalSize,
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
	}
}
