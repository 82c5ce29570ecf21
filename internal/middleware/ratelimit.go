package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"goal-planner/pkg/response"
)

const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

// rateLimiter keeps one token bucket per key; idle ones expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) allow(key string) bool {
	return rl.get(key).Allow()
}

// get returns the bucket for key, creating it at most once.
func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

// RateLimit throttles per user, falling back to the client IP when no scope
// is set. A non-positive limit disables it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = sc.UserID
		}

		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
