package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
)

// rateLimiter is a fixed-window request counter keyed by client IP. It is a
// blunt edge guard against abuse of the public write endpoints, not a
// fairness mechanism: the counter resets wholesale at each window boundary.
type rateLimiter struct {
	mu      sync.Mutex
	counts  map[string]int
	limit   int
	window  time.Duration
	resetAt time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		counts:  make(map[string]int),
		limit:   limit,
		window:  window,
		resetAt: time.Now().Add(window),
	}
}

// allow reports whether the client is under the limit in the current window.
func (l *rateLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.resetAt) {
		l.counts = make(map[string]int)
		l.resetAt = now.Add(l.window)
	}

	l.counts[clientIP]++
	return l.counts[clientIP] <= l.limit
}

// RateLimitMiddleware rejects clients exceeding limit requests per window
// with 429. The key is the remote IP, trusting X-Forwarded-For when present
// (the service runs behind a proxy in deployment).
func RateLimitMiddleware(limit int, window time.Duration, exposeDetails bool) func(http.Handler) http.Handler {
	limiter := newRateLimiter(limit, window)
	responder := NewResponder(log.With().Str("handlerName", "rateLimiter").Logger(), exposeDetails)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r)) {
				responder.WriteError(w, errs.NewApiErr(http.StatusTooManyRequests, "too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the requesting client's address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the original client
		for i := 0; i < len(forwarded); i++ {
			if forwarded[i] == ',' {
				return forwarded[:i]
			}
		}
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
