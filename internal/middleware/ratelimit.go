package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
)

// RateLimiter keeps one token bucket per client IP. Entries are never
// evicted; the instance count stays small for a single-shop deployment.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.visitors[ip]
	if !ok {
		l = rate.NewLimiter(rl.rps, rl.burst)
		rl.visitors[ip] = l
	}
	return l
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests.")
			c.Abort()
			return
		}
		c.Next()
	}
}
