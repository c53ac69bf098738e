package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window counter keyed by client. Unlike a
// blocking limiter, a request over the limit is rejected immediately; a
// web form must not hold the request goroutine asleep.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	windows  map[string]*rateWindow
}

type rateWindow struct {
	count int
	start time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per key per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  map[string]*rateWindow{},
	}
}

// Allow records one request for key and reports whether it fits the
// current window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		rl.windows[key] = &rateWindow{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// RateLimit rejects requests over the per-IP limit with 429. Applied to
// the credential endpoints (login, sign-up) to slow down guessing.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.String(http.StatusTooManyRequests, "Too many attempts, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
