// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"course_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps Authenticate's cost constant when the email is unknown.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// CountByRole returns how many users hold the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}

// JWTGenerator defines the token issuing dependency.
// The token binds only the user id; roles are resolved per request.
type JWTGenerator interface {
	GenerateToken(userID uint) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	hashCost     int
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (u *authUsecase) WithHashCost(cost int) *authUsecase {
	u.hashCost = cost
	return u
}

// Signup registers a new user with a hashed password and returns its id.
func (u *authUsecase) Signup(ctx context.Context, username, email, password, role string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(email) == "" || password == "" {
		return 0, ErrInvalidInput
	}
	parsedRole, err := entity.ParseRole(role)
	if err != nil {
		return 0, err
	}

	// The unique index on email is the final authority; this check only
	// avoids paying for a bcrypt hash on an obvious duplicate.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return 0, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     parsedRole,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Authenticate verifies the credentials and returns the user id.
// A bcrypt comparison runs even when the user does not exist so that an
// unknown email and a wrong password are indistinguishable. Storage
// failures are returned unchanged.
func (u *authUsecase) Authenticate(ctx context.Context, email, password string) (uint, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return 0, err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}

// Login authenticates the user and returns a signed token on success.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	userID, err := u.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(userID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

// GetUser returns the user with the given id.
func (u *authUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// RequireAdmin resolves the caller's current role from storage.
// It returns ErrUserNotFound when the token outlived its user and
// ErrForbidden for any non-admin role.
func (u *authUsecase) RequireAdmin(ctx context.Context, userID uint) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// EnsureAdmin creates an admin account when none exists yet.
// It reports whether a user was created.
func (u *authUsecase) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	count, err := u.users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if username == "" {
		username = "admin"
	}
	if _, err := u.Signup(ctx, username, email, password, string(entity.RoleAdmin)); err != nil {
		return false, err
	}
	return true, nil
}
