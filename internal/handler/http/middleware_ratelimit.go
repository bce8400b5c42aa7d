// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"golang.org/x/time/rate"
)

type callerLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per caller. Idle buckets are evicted by
// Cleanup, which Run calls periodically.
type RateLimiter struct {
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	now             func() time.Time

	mu       sync.Mutex
	limiters map[string]*callerLimiter
}

func NewRateLimiter(cfg config.RateLimit) *RateLimiter {
	return &RateLimiter{
		limit:           rate.Limit(cfg.RPS),
		burst:           cfg.Burst,
		cleanupInterval: cfg.CleanupInterval,
		now:             time.Now,
		limiters:        make(map[string]*callerLimiter),
	}
}

// Allow reports whether the caller identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	cl, ok := rl.limiters[key]
	if !ok {
		cl = &callerLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = now
	rl.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

// RetryAfter is the number of seconds until one token is refilled.
func (rl *RateLimiter) RetryAfter() int {
	if rl.limit <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(rl.limit))))
}

// Cleanup drops buckets that have been idle for two cleanup intervals.
func (rl *RateLimiter) Cleanup() {
	ttl := 2 * rl.cleanupInterval
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// Len returns the number of tracked callers.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// Run evicts idle buckets every cleanup interval until ctx is cancelled.
func (rl *RateLimiter) Run(ctx context.Context) error {
	if rl.cleanupInterval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
			logger.FromContext(ctx).Debug().Int("callers", rl.Len()).Msg("rate limiter cleaned up")
		case <-ctx.Done():
			return nil
		}
	}
}

// withRateLimit throttles callers by user id behind the access guard and by
// client address elsewhere.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rateLimitKey(r)
		if h.limiter.Allow(key) {
			next.ServeHTTP(w, r)
			return
		}

		h.recorder.RecordRateLimited()
		logger.FromRequest(r).Warn().Str("caller", key).Msg("rate limit exceeded")

		w.Header().Set("Retry-After", strconv.Itoa(h.limiter.RetryAfter()))
		writeError(w, r, ErrTooManyRequests)
	})
}

func rateLimitKey(r *http.Request) string {
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		return "user:" + identity.UserID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
