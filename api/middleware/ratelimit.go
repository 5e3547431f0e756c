package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/use-agent/tickerheat/config"
	"github.com/use-agent/tickerheat/models"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns per-IP token-bucket rate limiting middleware powered by
// golang.org/x/time/rate. Every scrape-backed endpoint holds the browser for
// seconds at a time, so the defaults are deliberately tight.
//
// Entries unused for 1 hour are evicted by a background goroutine that runs
// every 5 minutes, preventing unbounded memory growth.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*limiterEntry)

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		entry, ok := limiters[ip]
		if !ok {
			entry = &limiterEntry{
				limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
			}
			limiters[ip] = entry
		}
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-1 * time.Hour)
			mu.Lock()
			for ip, entry := range limiters {
				if entry.lastSeen.Before(cutoff) {
					delete(limiters, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		limiter := getLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Error:   "rate limit exceeded, please slow down",
			})
			return
		}

		c.Next()
	}
}
