// Package cache provides a small TTL cache for expensive external lookups.
package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// Cache wraps robfig/go-cache with per-item TTLs. Concurrent refreshes of the
// same key may race; repopulation is idempotent so the last writer wins.
type Cache struct {
	store *cache.Cache
}

// New -.
func New() *Cache {
	return &Cache{
		store: cache.New(0, CleanupInterval),
	}
}

// Set stores a value with the given TTL.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.store.Set(key, value, ttl)
}

// Get returns the value and true if present and unexpired.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Delete removes a value.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items.
func (c *Cache) Clear() {
	c.store.Flush()
}
