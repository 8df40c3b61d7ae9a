package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/api/models"
	"passenger-service/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthRequired for downstream handlers
const (
	ContextClaims = "claims"
	ContextEmail  = "passenger_email"
)

// AuthRequired validates bearer tokens on protected routes. It runs before
// any resource logic: a request that fails here never reaches a handler.
// All decode failures surface as the same 403; the distinct failure kind is
// only logged.
func AuthRequired(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			services.GetLogger().SecurityLogger("missing_bearer_token", c.ClientIP(),
				c.Request.Method+" "+c.Request.URL.Path)
			c.JSON(http.StatusForbidden, models.NewErrorResponse(models.MsgAuthenticationFailed))
			c.Abort()
			return
		}

		claims, err := services.TokenCodec().Decode(token)
		if err != nil {
			services.GetLogger().SecurityLogger(rejectionEvent(err), c.ClientIP(),
				c.Request.Method+" "+c.Request.URL.Path)
			status, message := models.StatusForAuthError(err)
			c.JSON(status, models.NewErrorResponse(message))
			c.Abort()
			return
		}

		// Claims become the authenticated identity for the rest of the request
		c.Set(ContextClaims, claims)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}

// rejectionEvent names the decode failure for the security log
func rejectionEvent(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired_token"
	case errors.Is(err, auth.ErrSignatureInvalid):
		return "forged_token"
	default:
		return "malformed_token"
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
