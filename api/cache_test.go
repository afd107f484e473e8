package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryCache(t *testing.T) {
	t.Run("returns what was stored", func(t *testing.T) {
		cache := newQueryCache(time.Hour)
		cache.set(cacheKeyProjectsAll, "payload")

		value, ok := cache.get(cacheKeyProjectsAll)

		assert.True(t, ok)
		assert.Equal(t, "payload", value)
	})

	t.Run("misses on unknown keys", func(t *testing.T) {
		cache := newQueryCache(time.Hour)

		_, ok := cache.get("nope")

		assert.False(t, ok)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		cache := newQueryCache(-time.Second)
		cache.set(cacheKeyProjectsAll, "payload")

		_, ok := cache.get(cacheKeyProjectsAll)

		assert.False(t, ok)
	})

	t.Run("invalidateAll drops every entry", func(t *testing.T) {
		cache := newQueryCache(time.Hour)
		cache.set(cacheKeyProjectsAll, 1)
		cache.set(cacheKeySkillsAll, 2)

		cache.invalidateAll()

		_, ok := cache.get(cacheKeyProjectsAll)
		assert.False(t, ok)
		_, ok = cache.get(cacheKeySkillsAll)
		assert.False(t, ok)
	})

	t.Run("keys do not collide across query shapes", func(t *testing.T) {
		cache := newQueryCache(time.Hour)
		cache.set(cacheKeyProjectPrefix+"alpha", "project")
		cache.set(cacheKeyCaseStudyPrefix+"alpha", "casestudy")

		value, ok := cache.get(cacheKeyProjectPrefix + "alpha")
		assert.True(t, ok)
		assert.Equal(t, "project", value)

		value, ok = cache.get(cacheKeyCaseStudyPrefix + "alpha")
		assert.True(t, ok)
		assert.Equal(t, "casestudy", value)
	})
}
