package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/jwt"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authHeaderName      = "Authorization"
	requestIDHeaderName = "X-Request-ID"

	callerIDKey  = "caller_id"
	claimsKey    = "claims"
	requestIDKey = "request_id"
)

func NewRequestLoggerMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeaderName, requestID)

		start := time.Now()
		c.Next()

		logger.Info("request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

// NewAuthMiddleware accepts a bearer token or the token cookie, in that order.
func NewAuthMiddleware(tokenParser jwt.TokenParser, secretKey string, revoker domain.TokenRevoker, logger logging.Logger) gin.HandlerFunc {
	secret := []byte(secretKey)

	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authentication token"})
			return
		}

		claims, err := tokenParser.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid or expired token"})
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("failed to check token revocation", "request_id", c.GetString(requestIDKey), "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": internalErrorMessage})
			return
		}

		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "token has been revoked"})
			return
		}

		c.Set(callerIDKey, claims.UserID)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader(authHeaderName); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}

		return parts[1], true
	}

	cookie, err := c.Cookie(jwt.TokenCookieName)
	if err != nil || cookie == "" {
		return "", false
	}

	return cookie, true
}

func callerID(c *gin.Context) int {
	return c.GetInt(callerIDKey)
}
