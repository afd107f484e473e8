package api

import (
	"sync"
	"time"
)

// Cache keys for the read endpoints, one per logical query shape.
const (
	cacheKeyProjectsAll      = "projects:all"
	cacheKeyProjectsFeatured = "projects:featured"
	cacheKeyProjectPrefix    = "project:"
	cacheKeyCaseStudyPrefix  = "casestudy:"
	cacheKeySkillsAll        = "skills:all"
	cacheKeySkillsByCategory = "skills:bycategory"
)

// queryCache is a read-through cache keyed by logical query. Entries expire
// after the TTL; every successful mutation flushes the cache, since the
// nested shapes embed both entities.
type queryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *queryCache) get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (c *queryCache) set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// invalidateAll drops every entry. Mutations touch both entity families
// (projects embed skills and vice versa), so handlers call this after writes.
func (c *queryCache) invalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
