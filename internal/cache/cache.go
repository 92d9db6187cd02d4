// Package cache memoizes fetch results for a fixed time-to-live. It is a
// process-lifetime, in-memory optimization: no persistence, no eviction
// beyond TTL expiry. Call sites receive the cache explicitly instead of
// relying on ambient memoization, which keeps the dependency visible and
// testable.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   any
	expires time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock builds a cache with an injected clock, for tests.
func NewWithClock(now func() time.Time) *Cache {
	c := New()
	c.now = now
	return c
}

// Get returns the cached value for key if it has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Put stores value under key for ttl. Overwriting is always safe: a
// refetch stores fresher data for the same key.
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expires: c.now().Add(ttl)}
}

// Flush drops every entry. Used by --refresh to force refetching.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fill returns the cached value for key, or invokes fn and caches its
// result for ttl. A failed fn is not cached, so the next call retries.
func Fill[T any](c *Cache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	value, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Put(key, value, ttl)
	return value, nil
}
