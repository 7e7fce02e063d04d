package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MelEUsher/Recipe-Manager/internal/apierror"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	rateMap   = make(map[string]*rateEntry)
	rateMapMu sync.Mutex
)

// RateLimiter returns a sliding-window per-IP rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rateMapMu.Lock()
		entry, exists := rateMap[ip]
		if !exists {
			entry = &rateEntry{}
			rateMap[ip] = entry
		}
		rateMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			// Reset sliding window
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}

// Periodically removes expired entries so IPs that never return do not
// accumulate forever.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		rateMapMu.Lock()
		for ip, entry := range rateMap {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(rateMap, ip)
			}
			entry.mu.Unlock()
		}
		rateMapMu.Unlock()
	}
}
