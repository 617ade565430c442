// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"course_backend/internal/feature/catalog/adapters"
	"course_backend/internal/feature/catalog/transport/handler"
	"course_backend/internal/feature/catalog/usecase"
	"course_backend/internal/platform/cache"
)

// cacheNamespace prefixes every catalog key in Redis.
const cacheNamespace = "catalog"

// CatalogRepositories groups the three catalog repositories.
type CatalogRepositories struct {
	Categories usecase.CategoryRepository
	Courses    usecase.CourseRepository
	Videos     usecase.VideoRepository
}

// NewCatalogRepositories creates the catalog repositories.
// If Redis is available, reads are served through the caching decorators.
// Otherwise, the GORM repositories are returned as is.
func NewCatalogRepositories(db *gorm.DB, rdb *redis.Client, ttl time.Duration) CatalogRepositories {
	categories := adapters.NewCategoryRepository(db)
	courses := adapters.NewCourseRepository(db)
	videos := adapters.NewVideoRepository(db)

	if rdb == nil {
		return CatalogRepositories{Categories: categories, Courses: courses, Videos: videos}
	}
	return CatalogRepositories{
		Categories: cache.NewCachingCategoryRepository(rdb, ttl, categories, cacheNamespace),
		Courses:    cache.NewCachingCourseRepository(rdb, ttl, courses, cacheNamespace),
		Videos:     cache.NewCachingVideoRepository(rdb, ttl, videos, cacheNamespace),
	}
}

// CatalogHandlers groups the HTTP handlers of the catalog feature.
type CatalogHandlers struct {
	Categories *handler.CategoryHandler
	Courses    *handler.CourseHandler
	Videos     *handler.VideoHandler
}

// NewCatalogHandlers wires repositories, use cases and handlers.
func NewCatalogHandlers(repos CatalogRepositories) CatalogHandlers {
	return CatalogHandlers{
		Categories: handler.NewCategoryHandler(usecase.NewCategoryUsecase(repos.Categories)),
		Courses:    handler.NewCourseHandler(usecase.NewCourseUsecase(repos.Courses)),
		Videos:     handler.NewVideoHandler(usecase.NewVideoUsecase(repos.Videos, repos.Courses)),
	}
}
