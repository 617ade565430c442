package usecase

import (
	"context"
	"strings"

	"course_backend/internal/feature/catalog/domain/entity"
)

// VideoInput carries the fields of a new video.
type VideoInput struct {
	Title    string
	Resume   string
	URL      string
	CourseID uint
}

// VideoUsecase provides business logic for videos.
type VideoUsecase struct {
	repo    VideoRepository
	courses CourseFinder
}

// NewVideoUsecase creates a new VideoUsecase. courses is only consulted when
// listing the videos of one course.
func NewVideoUsecase(r VideoRepository, courses CourseFinder) *VideoUsecase {
	return &VideoUsecase{repo: r, courses: courses}
}

// Create adds a video to an existing course and returns its id.
func (u *VideoUsecase) Create(ctx context.Context, in VideoInput) (uint, error) {
	if err := requireText("title", in.Title); err != nil {
		return 0, err
	}
	if err := requireText("url", in.URL); err != nil {
		return 0, err
	}
	video := &entity.Video{
		Title:    strings.TrimSpace(in.Title),
		Resume:   in.Resume,
		URL:      strings.TrimSpace(in.URL),
		CourseID: in.CourseID,
	}
	if err := u.repo.Create(ctx, video); err != nil {
		return 0, err
	}
	return video.ID, nil
}

// Get returns one video.
func (u *VideoUsecase) Get(ctx context.Context, id uint) (*entity.Video, error) {
	return u.repo.FindByID(ctx, id)
}

// List returns every video.
func (u *VideoUsecase) List(ctx context.Context) ([]entity.Video, error) {
	return u.repo.List(ctx)
}

// ListByCourse returns the videos of one course, or ErrCourseNotFound.
func (u *VideoUsecase) ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error) {
	if _, err := u.courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}
	return u.repo.ListByCourse(ctx, courseID)
}

// Update validates every present field first, so a rejected request
// leaves the stored video untouched.
func (u *VideoUsecase) Update(ctx context.Context, id uint, patch entity.VideoPatch) error {
	if err := optionalText("title", patch.Title); err != nil {
		return err
	}
	if err := optionalText("resume", patch.Resume); err != nil {
		return err
	}
	if err := optionalText("url", patch.URL); err != nil {
		return err
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}
	if patch.URL != nil {
		trimmed := strings.TrimSpace(*patch.URL)
		patch.URL = &trimmed
	}
	return u.repo.Update(ctx, id, patch)
}

// Delete removes a single video.
func (u *VideoUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
