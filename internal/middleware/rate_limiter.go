package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"

	"github.com/gin-gonic/gin"
)

// slidingWindow is an in-memory per-client rate limiter. It tracks request
// timestamps per key and drops everything older than the window on each hit.
type slidingWindow struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	sw := &slidingWindow{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go sw.purgeLoop()
	return sw
}

func (sw *slidingWindow) allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-sw.window)

	sw.mu.Lock()
	defer sw.mu.Unlock()

	recent := sw.hits[key][:0]
	for _, t := range sw.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= sw.limit {
		sw.hits[key] = recent
		return false
	}
	sw.hits[key] = append(recent, now)
	return true
}

// purgeLoop drops idle keys so the map does not grow forever.
func (sw *slidingWindow) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-sw.window)
		sw.mu.Lock()
		for key, times := range sw.hits {
			if len(times) == 0 || !times[len(times)-1].After(cutoff) {
				delete(sw.hits, key)
			}
		}
		sw.mu.Unlock()
	}
}

func limiterHandler(sw *slidingWindow) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sw.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("too many requests"))
			return
		}
		c.Next()
	}
}

// RateLimiter is the general API limit: 300 requests per minute per IP.
func RateLimiter() gin.HandlerFunc {
	return limiterHandler(newSlidingWindow(300, time.Minute))
}

// LoginRateLimiter is much tighter to slow credential stuffing.
func LoginRateLimiter() gin.HandlerFunc {
	return limiterHandler(newSlidingWindow(10, time.Minute))
}
