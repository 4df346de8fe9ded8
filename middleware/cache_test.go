package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResponseCache_CachesGET(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rc := NewResponseCache(1 * time.Minute)
	hits := 0
	router := gin.New()
	router.Use(rc.Cache())
	router.GET("/test", func(c *gin.Context) {
		hits++
		c.JSON(200, gin.H{"hits": hits})
	})

	// First request reaches the handler
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w1, req1)

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, 1, hits)

	// Second request is served from cache
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, 1, hits)
	assert.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestResponseCache_DistinguishesQueryStrings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rc := NewResponseCache(1 * time.Minute)
	router := gin.New()
	router.Use(rc.Cache())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"category": c.Query("category")})
	})

	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/test?category=hackathon", nil)
	router.ServeHTTP(w1, req1)

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/test?category=grant", nil)
	router.ServeHTTP(w2, req2)

	assert.Contains(t, w1.Body.String(), "hackathon")
	assert.Contains(t, w2.Body.String(), "grant")
	assert.NotEqual(t, w1.Body.String(), w2.Body.String())
}

func TestResponseCache_NeverCachesPOST(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rc := NewResponseCache(1 * time.Minute)
	hits := 0
	router := gin.New()
	router.Use(rc.Cache())
	router.POST("/test", func(c *gin.Context) {
		hits++
		c.JSON(200, gin.H{"hits": hits})
	})

	for i := 1; i <= 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), strconv.Itoa(i))
	}
	assert.Equal(t, 3, hits)
}

func TestResponseCache_SkipsErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rc := NewResponseCache(1 * time.Minute)
	hits := 0
	router := gin.New()
	router.Use(rc.Cache())
	router.GET("/test", func(c *gin.Context) {
		hits++
		c.JSON(404, gin.H{"error": "not found"})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	// Both requests reached the handler; 404s are not cached
	assert.Equal(t, 2, hits)
}

func TestResponseCache_ExpiresEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rc := NewResponseCache(50 * time.Millisecond)
	hits := 0
	router := gin.New()
	router.Use(rc.Cache())
	router.GET("/test", func(c *gin.Context) {
		hits++
		c.JSON(200, gin.H{"hits": hits})
	})

	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w1, req1)
	assert.Equal(t, 1, hits)

	time.Sleep(80 * time.Millisecond)

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w2, req2)
	assert.Equal(t, 2, hits)
}
