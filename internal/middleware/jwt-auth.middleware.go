package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/duccv/go-profile-guard/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenDecoder turns a raw bearer token into its payload.
type TokenDecoder interface {
	Decode(raw string) (model.TokenPayload, error)
}

// JWTAuthMiddleware provides JWT authentication middleware
type JWTAuthMiddleware struct {
	decoder TokenDecoder
	config  *MiddlewareConfig
}

// NewJWTAuthMiddleware creates a new JWT authentication middleware
func NewJWTAuthMiddleware(decoder TokenDecoder, config *MiddlewareConfig) *JWTAuthMiddleware {
	if config == nil {
		config = DefaultMiddlewareConfig()
	}
	return &JWTAuthMiddleware{
		decoder: decoder,
		config:  config,
	}
}

// Authenticate validates the bearer token and stores its payload in the context.
func (m *JWTAuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.shouldSkipAuth(c.Request.URL.Path) {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			handleAuthError(c, http.StatusUnauthorized, "missing_token", "Authorization token required")
			return
		}

		payload, err := m.decoder.Decode(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				handleAuthError(c, constant.StatusTokenExpired, "token_expired", "Token expired")
				return
			}
			zap.L().Debug("Token verification failed", zap.Error(err))
			handleAuthError(c, http.StatusUnauthorized, "invalid_token", "Invalid or expired token")
			return
		}

		c.Set(constant.JWTPayloadKey, payload)

		fields := []zap.Field{zap.String("path", c.Request.URL.Path)}
		if id := payload.UserID(); id != nil {
			fields = append(fields, zap.Int64("userId", *id))
		}
		zap.L().Debug("User authenticated successfully", fields...)

		c.Next()
	}
}

// OptionalAuth provides optional JWT authentication (doesn't fail if no token)
func (m *JWTAuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		payload, err := m.decoder.Decode(token)
		if err != nil {
			// Token is invalid, but don't fail the request
			zap.L().Warn("Invalid optional token", zap.Error(err))
			c.Next()
			return
		}

		c.Set(constant.JWTPayloadKey, payload)
		c.Next()
	}
}

// GetTokenPayload returns the payload stored by Authenticate or OptionalAuth.
func GetTokenPayload(c *gin.Context) (model.TokenPayload, bool) {
	v, exists := c.Get(constant.JWTPayloadKey)
	if !exists {
		return model.TokenPayload{}, false
	}
	payload, ok := v.(model.TokenPayload)
	return payload, ok
}

// extractToken extracts the JWT token from the Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

func (m *JWTAuthMiddleware) shouldSkipAuth(path string) bool {
	for _, skipPath := range m.config.AuthSkipPaths {
		if strings.HasPrefix(path, skipPath) {
			return true
		}
	}
	return false
}

// handleAuthError handles authentication errors with proper logging
func handleAuthError(c *gin.Context, statusCode int, errorType, message string) {
	zap.L().Warn("Authentication failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("ip", getClientIP(c)),
		zap.String("errorType", errorType))

	resData := constant.UNAUTHORIZED
	if statusCode == constant.StatusTokenExpired {
		resData = constant.TOKEN_EXPIRED
	}
	resData.Error = errorType

	c.AbortWithStatusJSON(statusCode, resData)
}
