// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"workflow-portal-backend/internal/config"
	"workflow-portal-backend/internal/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger logs one line per request with method, path, status and latency
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithContext(c).WithFields(map[string]interface{}{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("HTTP request")
		case status >= http.StatusBadRequest:
			entry.Warn("HTTP request")
		default:
			entry.Info("HTTP request")
		}
	}
}

// Recovery turns panics into a 500 response and reports them to Sentry
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("panic: %v", r)
				logger.WithContext(c).WithError(err).WithFields(map[string]interface{}{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				}).Error("Recovered from panic")

				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("request_id", c.GetString("request_id"))
					scope.SetRequest(c.Request)
					sentry.CaptureException(err)
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}

// RequestID propagates or generates an X-Request-ID header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// CORS allows the configured origins ("*" allows any)
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	wildcard := false
	for _, origin := range cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			wildcard = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (wildcard || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
