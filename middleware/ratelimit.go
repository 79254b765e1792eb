package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Stale buckets are evicted after this much inactivity.
const bucketTTL = 10 * time.Minute

type bucket struct {
	tokens float64
	seen   time.Time
}

// RateLimiter is a per-client-IP token bucket. It only guards the HTTP
// surface; scheduled syncs never pass through it.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	capacity  float64
	refillPer float64 // tokens per second
}

// NewRateLimiter allows maxRequests per window per client IP, with
// maxRequests also serving as the burst size.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:   make(map[string]*bucket),
		capacity:  float64(maxRequests),
		refillPer: float64(maxRequests) / window.Seconds(),
	}
	go rl.evictLoop()
	return rl
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, b := range rl.buckets {
			if now.Sub(b.seen) > bucketTTL {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[clientIP]
	if !ok {
		rl.buckets[clientIP] = &bucket{tokens: rl.capacity - 1, seen: now}
		return true
	}

	b.tokens += now.Sub(b.seen).Seconds() * rl.refillPer
	if b.tokens > rl.capacity {
		b.tokens = rl.capacity
	}
	b.seen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Middleware rejects requests from clients that exhausted their bucket.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}
