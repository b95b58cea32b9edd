package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cacheKeyFor(t *testing.T, target string) string {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return defaultKeyFunc(c)
}

func seedCache(t *testing.T, keys ...string) {
	t.Helper()

	cache.Lock()
	for _, key := range keys {
		cache.items[key] = cacheEntry{Expiration: time.Now().Add(time.Minute)}
	}
	cache.Unlock()

	t.Cleanup(func() {
		cache.Lock()
		cache.items = make(map[string]cacheEntry)
		cache.Unlock()
	})
}

func TestDefaultKeyFuncKeepsPathPrefix(t *testing.T) {
	key := cacheKeyFor(t, "/api/devices?page=2&page_size=10")
	assert.True(t, strings.HasPrefix(key, "/api/devices:"))
}

func TestDefaultKeyFuncQueryOrderInsensitive(t *testing.T) {
	a := cacheKeyFor(t, "/api/devices?page=2&page_size=10")
	b := cacheKeyFor(t, "/api/devices?page_size=10&page=2")
	c := cacheKeyFor(t, "/api/devices?page=3&page_size=10")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPurgeCacheByPrefix(t *testing.T) {
	seedCache(t,
		"/api/devices:aaa",
		"/api/devices:bbb",
		"/api/addresses/provinces:ccc",
	)

	PurgeCacheByPrefix("/api/devices")

	cache.RLock()
	defer cache.RUnlock()
	assert.Len(t, cache.items, 1)
	assert.Contains(t, cache.items, "/api/addresses/provinces:ccc")
}

func TestPurgeCacheClearsEverything(t *testing.T) {
	seedCache(t, "/api/devices:aaa", "/api/addresses/provinces:ccc")

	PurgeCache()

	assert.Equal(t, 0, CacheStats())
}
