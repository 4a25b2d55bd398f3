package middleware

import (
	"time"

	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/duccv/go-profile-guard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggingMiddleware provides request logging functionality
type LoggingMiddleware struct {
	config *MiddlewareConfig
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(config *MiddlewareConfig) *LoggingMiddleware {
	if config == nil {
		config = DefaultMiddlewareConfig()
	}
	return &LoggingMiddleware{
		config: config,
	}
}

// RequestLogger assigns a request id and logs the start and completion of
// each request. It must run after CorrelationIDMiddleware to pick up the
// correlation id.
func (l *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constant.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(constant.RequestIDKey, requestID)
		c.Header(constant.RequestIDHeader, requestID)

		if !l.config.LoggingEnabled {
			c.Next()
			return
		}

		start := time.Now()
		log := l.createRequestLogger(c, requestID)

		log.Info("Request started",
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("referer", c.GetHeader("Referer")))

		c.Next()

		duration := time.Since(start)
		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
		}
		if l.config.LogResponseTime {
			fields = append(fields, zap.Duration("duration", duration))
		}
		// user context is only known once the auth middleware has run
		if payload, ok := GetTokenPayload(c); ok {
			if id := payload.UserID(); id != nil {
				fields = append(fields, zap.Int64("userId", *id))
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}
		log.Info("Request completed", fields...)

		if l.config.SlowRequestAfter > 0 && duration > l.config.SlowRequestAfter {
			log.Warn("Slow request detected", zap.Duration("duration", duration))
		}
	}
}

// createRequestLogger creates a logger with request context
func (l *LoggingMiddleware) createRequestLogger(c *gin.Context, requestID string) *zap.Logger {
	log := logger.FromContext(c.Request.Context()).With(
		zap.String("requestId", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)

	if l.config.LogIPAddress {
		log = log.With(zap.String("ip", getClientIP(c)))
	}

	if l.config.LogUserAgent {
		log = log.With(zap.String("userAgent", c.GetHeader("User-Agent")))
	}

	return log
}
