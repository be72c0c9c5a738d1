// Package middleware holds the gin middleware shared by all routes:
// request-scoped logging and the admin password gate.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
)

// HeaderRequestID carries the caller-supplied correlation id; one is
// generated when absent.
const HeaderRequestID = "X-Request-ID"

// HeaderAdminPassword authenticates roster and session mutations.
const HeaderAdminPassword = "X-Admin-Password"

// RequestLogger attaches a request-scoped zerolog logger to the context,
// logs each request on completion and records HTTP metrics against the
// route pattern rather than the raw path.
func RequestLogger(logger zerolog.Logger, recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := sanitizeRequestID(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		reqLogger := logger.With().
			Str(logging.FieldRequestID, requestID).
			Str(logging.FieldMethod, c.Request.Method).
			Str(logging.FieldPath, c.Request.URL.Path).
			Logger()
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)
		recorder.RecordHTTPRequest(c.Request.Method, routePattern(c), status, duration)

		event := reqLogger.Info()
		if status >= http.StatusInternalServerError {
			event = reqLogger.Error()
		} else if status >= http.StatusBadRequest {
			event = reqLogger.Warn()
		}
		event.
			Int(logging.FieldStatusCode, status).
			Int64(logging.FieldDurationMS, duration.Milliseconds()).
			Msg("http request")
	}
}

// AdminAuth rejects requests that do not present the configured password.
// An empty configured password disables all admin writes. The comparison is
// constant-time so response timing leaks nothing about the password.
func AdminAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(HeaderAdminPassword)
		if password == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(password)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}

// routePattern prefers the registered route template so metrics never carry
// high-cardinality raw paths.
func routePattern(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

// sanitizeRequestID keeps ids log-safe: bounded length, printable subset.
func sanitizeRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > 64 {
		raw = raw[:64]
	}
	for _, r := range raw {
		if !(r == '-' || r == '_' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z')) {
			return ""
		}
	}
	return raw
}
