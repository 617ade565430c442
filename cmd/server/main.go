package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"course_backend/internal/app/di"
	"course_backend/internal/app/router"
	authentity "course_backend/internal/feature/auth/domain/entity"
	catalogadapters "course_backend/internal/feature/catalog/adapters"
	"course_backend/internal/platform/config"
	"course_backend/internal/platform/db"
	"course_backend/internal/platform/metrics"
	infraredis "course_backend/internal/platform/redis"
	"course_backend/internal/platform/validation"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log, os.Stdout))

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// db
	models := append([]interface{}{&authentity.User{}}, catalogadapters.Models()...)
	conn, err := db.Open(cfg.Database, models...)
	if err != nil {
		return err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	auth := di.NewAuth(conn, cfg.JWT)
	catalog := di.NewCatalogHandlers(di.NewCatalogRepositories(conn, rdb, cfg.Redis.CacheTTL))

	if cfg.Admin.Enabled() {
		created, err := auth.Seeder.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return err
		}
		if created {
			slog.Info("seeded admin account", "email", cfg.Admin.Email)
		}
	}

	gin.SetMode(cfg.Server.GinMode)
	validation.Init()
	r := router.NewRouter(router.Deps{
		Auth:        auth,
		Catalog:     catalog,
		Metrics:     metrics.NewHTTPMetrics(),
		DB:          sqlDB,
		CORSEnabled: cfg.Server.CORSEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
