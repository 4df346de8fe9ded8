package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry represents a cached response
type CacheEntry struct {
	Status      int
	ContentType string
	Body        []byte
	ExpiresAt   time.Time
}

// ResponseCache caches successful GET responses for a TTL. AI endpoints are
// POST and therefore never cached: identical calls may legitimately return
// different text.
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewResponseCache creates a new response cache
func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	go rc.cleanup()

	return rc
}

type cachingWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// Cache middleware for caching GET responses
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" || rc.ttl <= 0 {
			c.Next()
			return
		}

		key := rc.generateKey(c)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		writer := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if writer.Status() == 200 {
			rc.mu.Lock()
			rc.cache[key] = &CacheEntry{
				Status:      writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body,
				ExpiresAt:   time.Now().Add(rc.ttl),
			}
			rc.mu.Unlock()
		}
	}
}

func (rc *ResponseCache) generateKey(c *gin.Context) string {
	hash := md5.Sum([]byte(c.Request.Method + c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return hex.EncodeToString(hash[:])
}

// cleanup removes expired entries every few minutes
func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for {
		<-ticker.C
		rc.mu.Lock()
		now := time.Now()
		for key, entry := range rc.cache {
			if now.After(entry.ExpiresAt) {
				delete(rc.cache, key)
			}
		}
		rc.mu.Unlock()
	}
}
