package jwtmw

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature, algorithm, expiry and subject
		userID, err := v.Verify(tokenStr)
		if err != nil {
			if !errors.Is(err, ErrInvalidToken) {
				// Server misconfiguration (JWT_SECRET not set)
				slog.Error("token verification unavailable", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "server misconfigured"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}

		// 3. Pass the identity on to the next handler
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
