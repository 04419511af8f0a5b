package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/calorie-advisor/internal/infra/config"
)

// errorHandlingMiddleware renders the last recorded error as
// {"error":{"code","message"}} unless the handler already wrote a body.
func errorHandlingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		httpErr := asHTTPError(c.Errors.Last().Err)
		message := httpErr.Message
		if message == "" {
			message = httpErr.Error()
		}

		attrs := []any{"code", httpErr.Code, "status", httpErr.Status, "path", c.Request.URL.Path, "error", httpErr.Err}
		switch {
		case httpErr.Status >= http.StatusInternalServerError:
			logger.Error("request failed", attrs...)
		default:
			logger.Warn("request failed", attrs...)
		}

		if httpErr.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(httpErr.RetryAfter.Seconds()))))
		}
		c.JSON(httpErr.Status, gin.H{
			"error": gin.H{
				"code":    httpErr.Code,
				"message": message,
			},
		})
	}
}

func rateLimitMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newIPRateLimiter(cfg)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		wait, ok := limiter.allow(ip, time.Now())
		if ok {
			c.Next()
			return
		}
		logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
		httpErr := NewHTTPError(http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests", nil)
		httpErr.RetryAfter = wait
		abortWithError(c, httpErr)
	}
}

// ipRateLimiter is a per-client token bucket refilled continuously.
type ipRateLimiter struct {
	visitors      map[string]*visitor
	mu            sync.Mutex
	ratePerMinute float64
	burst         float64
	ttl           time.Duration
}

type visitor struct {
	tokens   float64
	lastSeen time.Time
}

func newIPRateLimiter(cfg config.RateLimitConfig) *ipRateLimiter {
	return &ipRateLimiter{
		visitors:      make(map[string]*visitor),
		ratePerMinute: float64(cfg.RequestsPerMinute),
		burst:         float64(cfg.Burst),
		ttl:           5 * time.Minute,
	}
}

// allow takes a token for ip. When none is left it returns the time until
// the next token is available.
func (l *ipRateLimiter) allow(ip string, now time.Time) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{tokens: l.burst, lastSeen: now}
		l.visitors[ip] = v
	} else {
		elapsed := now.Sub(v.lastSeen).Minutes()
		if elapsed > 0 {
			v.tokens = math.Min(l.burst, v.tokens+elapsed*l.ratePerMinute)
		}
		v.lastSeen = now
	}
	l.cleanupLocked(now)
	if v.tokens < 1 {
		missing := 1 - v.tokens
		return time.Duration(missing * float64(time.Minute) / l.ratePerMinute), false
	}
	v.tokens--
	return 0, true
}

func (l *ipRateLimiter) cleanupLocked(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}
}
