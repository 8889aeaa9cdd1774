package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-cpf-validator/internal/app"
	"github.com/MKhiriev/go-cpf-validator/internal/logger"
	"github.com/MKhiriev/go-cpf-validator/models"
	"golang.org/x/time/rate"
)

const (
	// visitorIdleTTL is how long an idle client keeps its limiter.
	visitorIdleTTL = 3 * time.Minute

	// visitorSweepSize is the table size at which idle clients are evicted.
	visitorSweepSize = 10_000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	burst    int

	now    func() time.Time
	reject func(http.ResponseWriter, *http.Request, models.CPFValidationResult)
}

func newRateLimiter(r rate.Limit, burst int) *rateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		burst:    burst,
		now:      time.Now,
		reject:   writeResult,
	}
}

func (rl *rateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.visitors) >= visitorSweepSize {
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTTL {
				delete(rl.visitors, key)
			}
		}
	}

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter
}

// limit rejects requests over the client's rate with 429 and the
// rate_limited result body.
func (rl *rateLimiter) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.getLimiter(ip).AllowN(rl.now(), 1) {
			logger.FromRequest(r).Warn().Str("client_ip", ip).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			rl.reject(w, r, models.NewInvalidCPFResult(models.CPFRateLimited, app.MsgTooManyRequests))
			return
		}

		next.ServeHTTP(w, r)
	})
}
