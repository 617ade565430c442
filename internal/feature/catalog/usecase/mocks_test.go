package usecase_test

import (
	"context"
	"errors"

	"course_backend/internal/feature/catalog/domain/entity"
)

// ErrDB is a sentinel shared between mocks and expectations.
var ErrDB = errors.New("database error")

var errNotImplemented = errors.New("not implemented")

type mockCategoryRepository struct {
	CreateFunc   func(ctx context.Context, c *entity.Category) error
	ListFunc     func(ctx context.Context) ([]entity.Category, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Category, error)
	RenameFunc   func(ctx context.Context, id uint, name string) error
	DeleteFunc   func(ctx context.Context, id uint) error
	CreateCalls  int
	RenameCalls  int
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return errNotImplemented
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockCategoryRepository) Rename(ctx context.Context, id uint, name string) error {
	m.RenameCalls++
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, id, name)
	}
	return errNotImplemented
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errNotImplemented
}

type mockCourseRepository struct {
	CreateFunc      func(ctx context.Context, c *entity.Course) error
	ListFunc        func(ctx context.Context) ([]entity.CourseSummary, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.Course, error)
	FindDetailsFunc func(ctx context.Context, id uint) (*entity.CourseDetails, error)
	UpdateFunc      func(ctx context.Context, id uint, patch entity.CoursePatch) error
	DeleteFunc      func(ctx context.Context, id uint) error
	CreateCalls     int
	UpdateCalls     int
}

func (m *mockCourseRepository) Create(ctx context.Context, c *entity.Course) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return errNotImplemented
}

func (m *mockCourseRepository) List(ctx context.Context) ([]entity.CourseSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockCourseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockCourseRepository) FindDetails(ctx context.Context, id uint) (*entity.CourseDetails, error) {
	if m.FindDetailsFunc != nil {
		return m.FindDetailsFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockCourseRepository) Update(ctx context.Context, id uint, patch entity.CoursePatch) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return errNotImplemented
}

func (m *mockCourseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errNotImplemented
}

type mockVideoRepository struct {
	CreateFunc       func(ctx context.Context, v *entity.Video) error
	ListFunc         func(ctx context.Context) ([]entity.Video, error)
	ListByCourseFunc func(ctx context.Context, courseID uint) ([]entity.Video, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.Video, error)
	UpdateFunc       func(ctx context.Context, id uint, patch entity.VideoPatch) error
	DeleteFunc       func(ctx context.Context, id uint) error
	CreateCalls      int
	UpdateCalls      int
}

func (m *mockVideoRepository) Create(ctx context.Context, v *entity.Video) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return errNotImplemented
}

func (m *mockVideoRepository) List(ctx context.Context) ([]entity.Video, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockVideoRepository) ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error) {
	if m.ListByCourseFunc != nil {
		return m.ListByCourseFunc(ctx, courseID)
	}
	return nil, errNotImplemented
}

func (m *mockVideoRepository) FindByID(ctx context.Context, id uint) (*entity.Video, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockVideoRepository) Update(ctx context.Context, id uint, patch entity.VideoPatch) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return errNotImplemented
}

func (m *mockVideoRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errNotImplemented
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint     { return &u }
