package usecase

import (
	"context"

	"course_backend/internal/feature/catalog/domain/entity"
)

// CategoryRepository abstracts category persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CategoryRepository interface {
	// Create inserts the category and sets its ID.
	// It returns ErrCategoryAlreadyExists when the name is taken.
	Create(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	// Rename changes the name of an existing category.
	Rename(ctx context.Context, id uint, name string) error
	// Delete removes a category that no course references.
	Delete(ctx context.Context, id uint) error
}

// CourseRepository abstracts course persistence.
// Every write validates the teacher and category references in the same
// transaction as the write itself.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	List(ctx context.Context) ([]entity.CourseSummary, error)
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
	FindDetails(ctx context.Context, id uint) (*entity.CourseDetails, error)
	// Update applies every field of the patch or none of them.
	Update(ctx context.Context, id uint, patch entity.CoursePatch) error
	// Delete removes the course and all of its videos atomically.
	Delete(ctx context.Context, id uint) error
}

// CourseFinder resolves a single course. CourseRepository satisfies it.
type CourseFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
}

// VideoRepository abstracts video persistence.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	List(ctx context.Context) ([]entity.Video, error)
	ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error)
	FindByID(ctx context.Context, id uint) (*entity.Video, error)
	// Update applies every field of the patch or none of them.
	Update(ctx context.Context, id uint, patch entity.VideoPatch) error
	Delete(ctx context.Context, id uint) error
}
