package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
}

// NewRateLimiter allows perSecond requests per IP with the given burst.
// Buckets idle for longer than idle are dropped by Sweep.
func NewRateLimiter(perSecond float64, burst int, idle time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idle:     idle,
	}
}

func (rl *RateLimiter) get(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Sweep forgets visitors not seen since now-idle and returns how many remain.
func (rl *RateLimiter) Sweep(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, ip)
		}
	}
	return len(rl.visitors)
}

// Run sweeps idle visitors every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			rl.Sweep(now)
		}
	}
}

// Handler rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		res := rl.get(c.IP(), now).ReserveN(now, 1)
		if !res.OK() {
			return WriteError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
		}
		if d := res.DelayFrom(now); d > 0 {
			res.CancelAt(now)
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(d.Seconds())+1))
			return WriteError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
		}
		return c.Next()
	}
}
