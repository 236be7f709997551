package ratelimiter

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const defaultMaxKeys = 10000

// UserRateLimiter keeps one token bucket per key. Buckets of keys that were
// not seen for the expiration time are dropped.
type UserRateLimiter struct {
	// guards get-or-create so one key never gets two buckets
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a limiter refilling rps tokens per second up to burst.
func New(rps float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	return NewWithSize(rps, burst, expirationTime, defaultMaxKeys)
}

// NewWithSize is New with an explicit cap on tracked keys; the least recently
// used key is evicted when the cap is hit.
func NewWithSize(rps float64, burst int, expirationTime time.Duration, maxKeys int) *UserRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &UserRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, expirationTime),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// Allow checks if a request should be allowed for a given key
func (u *UserRateLimiter) Allow(key string) bool {
	u.mu.Lock()
	limiter, ok := u.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(u.rate, u.burst)
	}
	// re-adding refreshes the expiration of an active key
	u.limiters.Add(key, limiter)
	u.mu.Unlock()
	return limiter.Allow()
}

// Len returns the number of tracked keys.
func (u *UserRateLimiter) Len() int {
	return u.limiters.Len()
}

// Stop drops all buckets.
func (u *UserRateLimiter) Stop() {
	u.limiters.Purge()
}
