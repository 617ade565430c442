// Package middleware provides the role gate for catalog write routes.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/auth/usecase"
	jwtmw "course_backend/internal/platform/jwt"
)

// AdminGate resolves whether a user may mutate the catalog.
type AdminGate interface {
	RequireAdmin(ctx context.Context, userID uint) error
}

// AdminRequired must run after jwtmw.AuthRequired.
// The role is looked up on every request, so a demoted admin loses access
// immediately without re-login.
func AdminRequired(gate AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(jwtmw.ContextUserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}

		userID := c.GetUint(jwtmw.ContextUserID)
		err := gate.RequireAdmin(c.Request.Context(), userID)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, usecase.ErrForbidden):
			slog.Warn("admin route denied", "user_id", userID, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Without permission"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			slog.Error("role lookup failed", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
	}
}
