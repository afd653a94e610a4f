package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"travelbook/pkg/auth"
	"travelbook/pkg/common"
)

// RequireToken validates the bearer token on protected routes. The
// use-case layer still enforces its own session check; this keeps
// obviously unauthenticated traffic out before it reaches a handler.
func RequireToken(tokens *auth.SessionTokens, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				common.RespondError(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
				return
			}

			if _, err := tokens.Validate(token); err != nil {
				logger.Warn("invalid session token",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				common.RespondError(w, http.StatusUnauthorized, "Unauthorized", "invalid session token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects clients that exceed the per-IP budget
func RateLimit(limiter *auth.IPRateLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, _ := limiter.Allow(r.Context(), clientIP(r))
			if !allowed {
				common.RespondError(w, http.StatusTooManyRequests, "RateLimited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken pulls the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return header
}

// clientIP extracts the client IP address
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
