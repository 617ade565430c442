// Command seed creates the first admin account and exits.
// It reads the same environment as the server and requires ADMIN_EMAIL and
// ADMIN_PASSWORD.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"course_backend/internal/app/di"
	authentity "course_backend/internal/feature/auth/domain/entity"
	catalogadapters "course_backend/internal/feature/catalog/adapters"
	"course_backend/internal/platform/config"
	"course_backend/internal/platform/db"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if !cfg.Admin.Enabled() {
		slog.Error("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
		os.Exit(2)
	}

	// Migrations must run so the users table exists on a fresh database.
	cfg.Database.RunMigrations = true
	models := append([]interface{}{&authentity.User{}}, catalogadapters.Models()...)
	conn, err := db.Open(cfg.Database, models...)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, err := di.NewAuth(conn, cfg.JWT).Seeder.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	if created {
		slog.Info("admin created", "email", cfg.Admin.Email)
		return
	}
	slog.Info("an admin already exists; nothing to do")
}
