// Package router builds the gin engine and its route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"course_backend/internal/app/di"
	authmw "course_backend/internal/feature/auth/transport/middleware"
	jwtmw "course_backend/internal/platform/jwt"
	"course_backend/internal/platform/http/handler"
	"course_backend/internal/platform/http/middleware"
	"course_backend/internal/platform/metrics"
)

// Deps carries everything the route table needs.
type Deps struct {
	Auth        di.AuthComponents
	Catalog     di.CatalogHandlers
	Metrics     *metrics.HTTPMetrics
	DB          handler.Pinger
	CORSEnabled bool
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLog())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	if d.CORSEnabled {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}))
	}

	categories := d.Catalog.Categories
	courses := d.Catalog.Courses
	videos := d.Catalog.Videos

	// Public
	r.GET("/", handler.Welcome)
	health := handler.Health(d.DB)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.POST("/signup", d.Auth.Handler.Signup)
	r.POST("/login", d.Auth.Handler.Login)
	r.GET("/categories", categories.List)
	r.GET("/categories/:id", categories.Get)
	r.GET("/courses", courses.List)

	// Any valid session
	session := r.Group("/")
	session.Use(jwtmw.AuthRequired(d.Auth.Verifier))
	{
		session.GET("/me", d.Auth.Handler.Me)
		session.GET("/courses/:id", courses.Details)
		session.GET("/courses/:id/videos", videos.ListByCourse)
		session.GET("/videos", videos.List)
		session.GET("/videos/:id", videos.Get)
	}

	// Admin only. The role is checked before the body is read.
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(d.Auth.Verifier), authmw.AdminRequired(d.Auth.Gate))
	{
		admin.POST("/categories/add", categories.Create)
		admin.PUT("/categories/:id/update", categories.Update)
		admin.DELETE("/categories/:id/delete", categories.Delete)

		admin.POST("/courses/add", courses.Create)
		admin.PUT("/courses/:id/update", courses.Update)
		admin.DELETE("/courses/:id/delete", courses.Delete)

		admin.POST("/videos/add", videos.Create)
		admin.PUT("/videos/:id/update", videos.Update)
		admin.DELETE("/videos/:id/delete", videos.Delete)
	}

	return r
}
