package middleware

import (
	"net/http"
	"time"

	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderOperatorKey authenticates the admin surface.
	HeaderOperatorKey = "X-Operator-Key"

	// Context keys
	CtxPlayerID = "player_id"
)

// JWTAuth creates a middleware that validates player session tokens.
// Tokens are issued by the external identity collaborator; this
// service only validates them.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxPlayerID, claims.PlayerID)
		c.Next()
	}
}

// OperatorAuth creates a middleware guarding admin routes. The plain
// operator key travels in a header and is verified against its
// Argon2id hash from config. An empty hash disables the surface.
func OperatorAuth(hashSvc ports.HashService, operatorKeyHash string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if operatorKeyHash == "" {
			response.Error(c, apperror.ErrInvalidOperatorKey())
			c.Abort()
			return
		}

		key := c.GetHeader(HeaderOperatorKey)
		if key == "" {
			response.Error(c, apperror.ErrInvalidOperatorKey())
			c.Abort()
			return
		}

		ok, err := hashSvc.Verify(key, operatorKeyHash)
		if err != nil {
			log.Error().Err(err).Msg("operator key hash is malformed")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if !ok {
			log.Warn().Str("client_ip", c.ClientIP()).Msg("operator key rejected")
			response.Error(c, apperror.ErrInvalidOperatorKey())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
