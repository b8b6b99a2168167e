package httpapi

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// defaultIdleTTL is how long an untouched client limiter is kept.
const defaultIdleTTL = 10 * time.Minute

// ClientLimiter rate-limits per client IP.
type ClientLimiter struct {
	mu        sync.Mutex
	m         map[string]*clientEntry
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		m:    make(map[string]*clientEntry),
		r:    rate.Limit(reqPerSec),
		b:    burst,
		idle: defaultIdleTTL,
		now:  time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if now.Sub(cl.lastSweep) >= cl.idle {
		for k, e := range cl.m {
			if now.Sub(e.seen) >= cl.idle {
				delete(cl.m, k)
			}
		}
		cl.lastSweep = now
	}

	if e, ok := cl.m[key]; ok {
		e.seen = now
		return e.lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[key] = &clientEntry{lim: lim, seen: now}
	return lim
}

// Allow takes one token for key. When it can't, retryAfter is how long the
// client should wait.
func (cl *ClientLimiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	now := cl.now()
	lim := cl.limiterFor(key, now)
	if cl.r == 0 {
		// zero rate: only the burst is served, and tokens come back when
		// the entry is swept
		if lim.AllowN(now, 1) {
			return true, 0
		}
		return false, cl.idle
	}

	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, cl.idle
	}
	if d := res.DelayFrom(now); d == rate.InfDuration {
		res.CancelAt(now)
		return false, cl.idle
	} else if d > 0 {
		res.CancelAt(now)
		return false, d
	}
	return true, 0
}

// Len is the number of tracked clients.
func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.m)
}

// clientKey is the remote IP. X-Forwarded-For is not trusted.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}

func rateLimitExempt(path string) bool {
	return path == "/health" || path == "/metrics"
}

func RateLimit(cl *ClientLimiter, log *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rateLimitExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			key := clientKey(r)
			ok, wait := cl.Allow(key)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			rateLimited.Inc()
			secs := int(math.Ceil(wait.Seconds()))
			if secs < 1 {
				secs = 1
			}
			log.Debug("rate limited",
				zap.String("request_id", RequestIDFrom(r.Context())),
				zap.String("client", key),
				zap.Duration("retry_after", wait),
			)
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			WriteError(w, r, http.StatusTooManyRequests, CodeRateLimited, "too many requests")
		})
	}
}
