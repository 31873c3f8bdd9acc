package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"golang.org/x/time/rate"
)

// idleVisitorTTL is how long an unused per-IP limiter is kept.
const idleVisitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

// newIPRateLimiter allows perMinute requests per IP with the given burst.
// A non-positive perMinute disables limiting and returns nil.
func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &ipRateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > idleVisitorTTL {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > idleVisitorTTL {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// withAuthRateLimit limits signup and login attempts per client IP.
// Requests are keyed on the socket peer address unless proxy headers are
// trusted, in which case RealIP has already rewritten RemoteAddr.
func (h *Handler) withAuthRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		if !h.authLimiter.allow(ip) {
			rateLimited.WithLabelValues(r.URL.Path).Inc()
			logger.FromRequest(r).Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("auth rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(h.authLimiter.limit)))
			h.writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 {
		return 60
	}
	seconds := int(1 / float64(limit))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
