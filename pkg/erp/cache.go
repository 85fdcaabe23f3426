// Package erp provides the business-system target client the orchestrator
// uses to execute a decision's API calls.
package erp

import (
	"sync"
	"time"
)

// cacheEntry holds a cached response with a timestamp for TTL expiration.
type cacheEntry struct {
	body      []byte
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory response cache with per-entry TTL.
// Expired entries are cleaned up lazily on Get() - no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewCache creates an empty response cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Get returns a cached response if present and younger than ttl.
func (c *Cache) Get(key string, ttl time.Duration) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > ttl {
		// Expired - clean up lazily.
		// Re-check under write lock: a concurrent Set() may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.body, true
}

// Set stores a response with the current timestamp.
func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		body:      body,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
