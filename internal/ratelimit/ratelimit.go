// internal/ratelimit/ratelimit.go
package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

// Result of one admission check.
type Result struct {
	Success   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter is a fixed-window counter over a persisted rate_limits row.
// The window resets wholesale at its expiry, it does not slide.
type Limiter struct {
	Repo   repository.RateLimitRepositoryInterface
	Logger *zap.Logger
}

func NewLimiter(repo repository.RateLimitRepositoryInterface, log *zap.Logger) *Limiter {
	return &Limiter{Repo: repo, Logger: log}
}

// Allow admits or rejects the request for the logical key. On any storage
// failure it fails OPEN: availability is preferred over strictness, so a
// broken counter store never blocks traffic.
func (l *Limiter) Allow(r *http.Request, key string, maxRequests int, window time.Duration) Result {
	composite := key + ":" + ClientIP(r)

	count, expiresAt, err := l.Repo.Increment(composite, window)
	if err != nil {
		l.Logger.Warn("rate limit store unavailable, failing open",
			zap.String("key", composite), zap.Error(err))
		return Result{Success: true, Remaining: maxRequests, ResetAt: time.Now().Add(window)}
	}

	if count > maxRequests {
		return Result{Success: false, Remaining: 0, ResetAt: expiresAt}
	}
	return Result{Success: true, Remaining: maxRequests - count, ResetAt: expiresAt}
}

// ClientIP resolves the caller identity: x-real-ip, then the first hop of
// x-forwarded-for, else "unknown". All unidentifiable clients therefore
// share one bucket.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("x-real-ip"); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("x-forwarded-for"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return "unknown"
}
