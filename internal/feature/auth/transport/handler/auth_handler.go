// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/auth/domain/entity"
	"course_backend/internal/feature/auth/transport/http/dto"
	"course_backend/internal/feature/auth/usecase"
	jwtmw "course_backend/internal/platform/jwt"
)

// AuthUsecase defines the use cases for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns its id.
	Signup(ctx context.Context, username, email, password, role string) (uint, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, error)
	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// A duplicate email is answered with 400, the same status as bad input.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid data"})
		return
	}

	id, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("signup rejected: email taken", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "User already exist"})
		return
	case errors.Is(err, entity.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid role"})
		return
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid data"})
		return
	default:
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "internal server error"})
		return
	}

	slog.Info("user signup successful", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.SignupRes{Message: "User sucessfully created", ID: id})
}

// Login handles the login endpoint.
// Every credential failure, including a malformed body, is the same 401 so
// callers cannot tell which part of the credentials was wrong. Any other
// error is a 500.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: "Unauthorized"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "internal server error"})
			return
		}
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: "Unauthorized"})
		return
	}
	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{Message: "Login successful!", AccessToken: token})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageRes{Message: "User not found"})
			return
		}
		slog.Error("failed to load user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.MessageRes{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.MeRes{
		Message: "ok",
		User: dto.UserItem{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		},
	})
}
