package server

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
	apperr "warehouse-portal/errors"
	"warehouse-portal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const principalKey = "principal"

// Authenticated validates the bearer token and stores the principal in the
// gin context for the handlers.
func (s *Server) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expecting the standard "Bearer <token>" format
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abort(c, http.StatusUnauthorized, apperr.ErrUnauthenticated)
			return
		}
		principal, err := s.services.Auth.Authenticate(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// AdminOnly stops non-admin principals.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !principalFrom(c).IsAdmin() {
			abort(c, http.StatusForbidden, apperr.ErrForbidden)
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, err error) {
	message, colour := apperr.Status(err, "")
	if status == http.StatusUnauthorized {
		message = "Please sign in again"
	}
	c.AbortWithStatusJSON(status, Page{View: ViewLogin, Status: message, StatusColour: colour})
}

func GinMetricsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()
		endpoint := ctx.FullPath()
		method := ctx.Request.Method
		statusCode := ctx.Writer.Status()
		status := fmt.Sprintf("%d", statusCode)
		metrics.HttpRequestsTotal.WithLabelValues(endpoint, status, method).Inc()
		metrics.HttpRequestDuration.WithLabelValues(endpoint, method).Observe(duration)
		if statusCode >= 400 && statusCode < 600 {
			metrics.HttpErrorsTotal.WithLabelValues(endpoint, status, method).Inc()
		}
	}
}

// RateLimiter keeps one token bucket per sender.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Middleware must run after Authenticated, the bucket is chosen by principal.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		limiter := rl.getLimiter(principal.TenantID + "/" + principal.Address)
		if !limiter.Allow() {
			metrics.HttpRateLimitRejectionsTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Page{
				View:         ViewConversation,
				Status:       "Too many messages, slow down",
				StatusColour: apperr.ColourFailure,
			})
			return
		}
		c.Next()
	}
}
