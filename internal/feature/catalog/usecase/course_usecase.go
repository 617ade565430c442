package usecase

import (
	"context"
	"strings"

	"course_backend/internal/feature/catalog/domain/entity"
)

// CourseInput carries the fields of a new course.
type CourseInput struct {
	Title       string
	Description string
	TeacherID   uint
	CategoryID  uint
}

// CourseUsecase provides business logic for courses.
type CourseUsecase struct {
	repo CourseRepository
}

// NewCourseUsecase creates a new CourseUsecase with the given repository.
func NewCourseUsecase(r CourseRepository) *CourseUsecase {
	return &CourseUsecase{repo: r}
}

// Create adds a course and returns its id.
// Shape errors are reported before the teacher and category are resolved.
func (u *CourseUsecase) Create(ctx context.Context, in CourseInput) (uint, error) {
	if err := requireText("title", in.Title); err != nil {
		return 0, err
	}
	course := &entity.Course{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		TeacherID:   in.TeacherID,
		CategoryID:  in.CategoryID,
	}
	if err := u.repo.Create(ctx, course); err != nil {
		return 0, err
	}
	return course.ID, nil
}

// List returns every course with its category name.
func (u *CourseUsecase) List(ctx context.Context) ([]entity.CourseSummary, error) {
	return u.repo.List(ctx)
}

// Details returns the course joined with its teacher, category and videos.
func (u *CourseUsecase) Details(ctx context.Context, id uint) (*entity.CourseDetails, error) {
	return u.repo.FindDetails(ctx, id)
}

// Update validates every present field first, so a rejected request
// leaves the stored course untouched.
func (u *CourseUsecase) Update(ctx context.Context, id uint, patch entity.CoursePatch) error {
	if err := optionalText("title", patch.Title); err != nil {
		return err
	}
	if err := optionalText("description", patch.Description); err != nil {
		return err
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	return u.repo.Update(ctx, id, patch)
}

// Delete removes the course together with its videos.
func (u *CourseUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
