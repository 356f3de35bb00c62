package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimiter is a token bucket limiter keyed by the sending shop's
// domain header, so one noisy store cannot starve the others. Requests
// without the header fall back to the client IP.
type RateLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	rate    int           // requests per window
	window  time.Duration // refill window
	keyHdr  string        // header used as the bucket key
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing rate requests per window per
// shop. A cleanup goroutine drops idle buckets.
func NewRateLimiter(rate int, window time.Duration, keyHeader string) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		window:  window,
		keyHdr:  keyHeader,
	}

	go rl.cleanup()

	return rl
}

// Middleware returns the Fiber handler. Health checks bypass limiting.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		key := c.Get(rl.keyHdr)
		if key == "" {
			key = c.IP()
		}

		if !rl.allow(key) {
			c.Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}

		return c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[key]
	if !exists {
		b = &bucket{tokens: rl.rate, lastRefill: time.Now()}
		rl.buckets[key] = b
	}

	now := time.Now()
	if elapsed := now.Sub(b.lastRefill); elapsed >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}

	return false
}

// cleanup removes buckets that have been idle for two full windows.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, b := range rl.buckets {
			if now.Sub(b.lastRefill) > rl.window*2 {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}
