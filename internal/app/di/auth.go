package di

import (
	"context"

	"gorm.io/gorm"

	authadapters "course_backend/internal/feature/auth/adapters"
	authhandler "course_backend/internal/feature/auth/transport/handler"
	authmw "course_backend/internal/feature/auth/transport/middleware"
	authusecase "course_backend/internal/feature/auth/usecase"
	"course_backend/internal/platform/config"
	jwtmw "course_backend/internal/platform/jwt"
)

// AdminSeeder creates the first admin account.
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, username, email, password string) (bool, error)
}

// AuthComponents groups everything the router and main need from the auth feature.
type AuthComponents struct {
	Handler  *authhandler.AuthHandler
	Gate     authmw.AdminGate
	Verifier *jwtmw.Verifier
	Seeder   AdminSeeder
}

// NewAuth wires the user repository, token issuer and auth use case.
func NewAuth(db *gorm.DB, cfg config.JWTConfig) AuthComponents {
	users := authadapters.NewUserRepository(db)
	uc := authusecase.NewAuthUsecase(users, jwtmw.NewGenerator(cfg.Secret, cfg.Expiration))
	return AuthComponents{
		Handler:  authhandler.NewAuthHandler(uc),
		Gate:     uc,
		Verifier: jwtmw.NewVerifier(cfg.Secret),
		Seeder:   uc,
	}
}
