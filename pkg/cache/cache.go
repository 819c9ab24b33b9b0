package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is an in-process map with per entry expiry. It stands in for Redis
// when Redis is disabled.
type Cache struct {
	store map[string]entry
	mu    sync.RWMutex
	now   func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		store: make(map[string]entry),
		now:   time.Now,
	}
}

// Set stores value for ttl. A ttl of zero or less never expires.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.store[key] = e
}

// Get returns the live value under key.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.expired(e) {
		c.Delete(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
}

// Purge drops expired entries and returns how many remain.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.store {
		if c.expired(e) {
			delete(c.store, k)
		}
	}
	return len(c.store)
}

// Janitor purges expired entries every interval until ctx is done.
func (c *Cache) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}

func (c *Cache) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)
}
