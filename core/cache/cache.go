package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry is a stored value with its expiry deadline.
type entry struct {
	value   any
	expires time.Time
}

// expired returns true once the entry's deadline has passed.
func (e entry) expired() bool {
	return time.Now().After(e.expires)
}

// Cache is an in-process TTL cache keyed by string.
//
// Remember coalesces concurrent producers for the same key through
// singleflight, but this is best-effort only: a caller that races the
// coalescing window may still recompute, and the last write wins. The
// matcher-guarded save paths make that race harmless.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	sf      singleflight.Group
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Remember returns the cached value for key if it is still fresh.
// Otherwise it invokes producer, stores the result under key for ttl,
// and returns it. Producer errors are returned without caching.
func (c *Cache) Remember(key string, ttl time.Duration, producer func() (any, error)) (any, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err, _ := c.sf.Do(key, func() (any, error) {
		// Re-check after winning the flight; a concurrent caller may
		// have populated the key already.
		if value, ok := c.Get(key); ok {
			return value, nil
		}

		value, err := producer()
		if err != nil {
			return nil, err
		}

		c.Put(key, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Get returns the value stored under key, or ok=false if the key is
// absent or expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired() {
		return nil, false
	}
	return e.value, true
}

// Has reports whether key holds a fresh value.
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Put stores value under key for ttl, replacing any previous value.
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Forget removes key from the cache.
func (c *Cache) Forget(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
