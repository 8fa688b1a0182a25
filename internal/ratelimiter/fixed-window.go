package ratelimiter

import (
	"sync"
	"time"
)

// FixedWindowRateLimiter counts requests per client IP; each client's window
// starts with its first request and its count is dropped when it closes.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]int
	limit   int
	window  time.Duration

	afterFunc func(time.Duration, func()) *time.Timer
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   limit,
		window:  window,

		afterFunc: time.AfterFunc,
	}
}

func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	count, exists := rl.clients[ip]
	if !exists {
		// the entry marks an open window, even for a zero limit
		rl.clients[ip] = 0
		rl.afterFunc(rl.window, func() { rl.reset(ip) })
	}
	if count >= rl.limit {
		return false, rl.window
	}

	rl.clients[ip] = count + 1
	return true, 0
}

func (rl *FixedWindowRateLimiter) reset(ip string) {
	rl.Lock()
	delete(rl.clients, ip)
	rl.Unlock()
}
