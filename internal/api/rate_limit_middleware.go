package api

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides per-client token bucket rate limiting
type RateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*clientLimiter
	rateLimit   rate.Limit
	burstSize   int
	idleTimeout time.Duration
	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRateLimiter allows requestsPerSecond per client with the given burst.
// A non-positive rate disables limiting.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limiters:    make(map[string]*clientLimiter),
		rateLimit:   limit,
		burstSize:   burst,
		idleTimeout: 10 * time.Minute,
		cleanupTick: time.NewTicker(5 * time.Minute),
		done:        make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// getLimiter gets or creates a rate limiter for the given client
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, ok := rl.limiters[key]; ok {
		cl.lastSeen = time.Now()
		return cl.limiter
	}
	cl := &clientLimiter{limiter: rate.NewLimiter(rl.rateLimit, rl.burstSize), lastSeen: time.Now()}
	rl.limiters[key] = cl
	return cl.limiter
}

// Allow reports whether the client identified by key may make a request now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// retryAfter is the time until a single token is available, rounded up to
// whole seconds for the Retry-After header.
func (rl *RateLimiter) retryAfter() int {
	if rl.rateLimit == rate.Inf || rl.rateLimit <= 0 {
		return 1
	}
	return int(math.Max(1, math.Ceil(1/float64(rl.rateLimit))))
}

// Middleware rejects requests over the limit with a 429 JSON error.
func (rl *RateLimiter) Middleware(s *Server) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.rateLimit == rate.Inf {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.Allow(clientKey(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
				w.Header().Set("X-RateLimit-Remaining", "0")
				s.sendError(w, r, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies a client by the host part of its remote address.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// cleanup periodically removes limiters of idle clients
func (rl *RateLimiter) cleanup() {
	for {
		select {
		case <-rl.done:
			return
		case now := <-rl.cleanupTick.C:
			rl.mu.Lock()
			for key, cl := range rl.limiters {
				if now.Sub(cl.lastSeen) > rl.idleTimeout {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop stops the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
}
