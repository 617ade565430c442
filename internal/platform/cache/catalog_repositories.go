package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/usecase"
)

// CachingCategoryRepository decorates a CategoryRepository with Redis caching
// of the category list.
type CachingCategoryRepository struct {
	inner usecase.CategoryRepository
	*store
}

var _ usecase.CategoryRepository = (*CachingCategoryRepository)(nil)

// NewCachingCategoryRepository decorates inner. If ttl is 0 it defaults to
// 5 minutes; if namespace is empty it uses "catalog".
func NewCachingCategoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CategoryRepository, namespace string) *CachingCategoryRepository {
	return &CachingCategoryRepository{inner: inner, store: newStore(rdb, ttl, namespace)}
}

func (c *CachingCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := c.inner.Create(ctx, category); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

// List returns the cached list when present.
func (c *CachingCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	key := c.key(ctx, "categories")
	var out []entity.Category
	if c.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

func (c *CachingCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	return c.inner.FindByID(ctx, id)
}

// Rename purges the namespace since course listings embed category names.
func (c *CachingCategoryRepository) Rename(ctx context.Context, id uint, name string) error {
	if err := c.inner.Rename(ctx, id, name); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

func (c *CachingCategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

// CachingCourseRepository decorates a CourseRepository with Redis caching of
// the course list and of course details.
type CachingCourseRepository struct {
	inner usecase.CourseRepository
	*store
}

var _ usecase.CourseRepository = (*CachingCourseRepository)(nil)

// NewCachingCourseRepository decorates inner with the same defaults as
// NewCachingCategoryRepository.
func NewCachingCourseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CourseRepository, namespace string) *CachingCourseRepository {
	return &CachingCourseRepository{inner: inner, store: newStore(rdb, ttl, namespace)}
}

func (c *CachingCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if err := c.inner.Create(ctx, course); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

// List returns the cached summaries when present.
func (c *CachingCourseRepository) List(ctx context.Context) ([]entity.CourseSummary, error) {
	key := c.key(ctx, "courses")
	var out []entity.CourseSummary
	if c.get(ctx, key, &out) {
		return out, nil
	}
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, out)
	return out, nil
}

func (c *CachingCourseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	return c.inner.FindByID(ctx, id)
}

// FindDetails returns the cached details when present. Not-found results are
// never cached.
func (c *CachingCourseRepository) FindDetails(ctx context.Context, id uint) (*entity.CourseDetails, error) {
	key := c.key(ctx, "course", id)
	var out entity.CourseDetails
	if c.get(ctx, key, &out) {
		return &out, nil
	}
	details, err := c.inner.FindDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, details)
	return details, nil
}

// Update purges unless the patch was empty.
func (c *CachingCourseRepository) Update(ctx context.Context, id uint, patch entity.CoursePatch) error {
	if err := c.inner.Update(ctx, id, patch); err != nil {
		return err
	}
	if !patch.IsEmpty() {
		c.purge(ctx)
	}
	return nil
}

func (c *CachingCourseRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

// CachingVideoRepository purges cached course details whenever a video
// changes. Video reads are not cached.
type CachingVideoRepository struct {
	inner usecase.VideoRepository
	*store
}

var _ usecase.VideoRepository = (*CachingVideoRepository)(nil)

// NewCachingVideoRepository decorates inner.
func NewCachingVideoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.VideoRepository, namespace string) *CachingVideoRepository {
	return &CachingVideoRepository{inner: inner, store: newStore(rdb, ttl, namespace)}
}

func (c *CachingVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	if err := c.inner.Create(ctx, video); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

func (c *CachingVideoRepository) List(ctx context.Context) ([]entity.Video, error) {
	return c.inner.List(ctx)
}

func (c *CachingVideoRepository) ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error) {
	return c.inner.ListByCourse(ctx, courseID)
}

func (c *CachingVideoRepository) FindByID(ctx context.Context, id uint) (*entity.Video, error) {
	return c.inner.FindByID(ctx, id)
}

// Update purges unless the patch was empty.
func (c *CachingVideoRepository) Update(ctx context.Context, id uint, patch entity.VideoPatch) error {
	if err := c.inner.Update(ctx, id, patch); err != nil {
		return err
	}
	if !patch.IsEmpty() {
		c.purge(ctx)
	}
	return nil
}

func (c *CachingVideoRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}
