package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/usecase"
)

var errInternal = errors.New("db down")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockCategoryUsecase struct {
	CreateFunc func(ctx context.Context, name string) (uint, error)
	ListFunc   func(ctx context.Context) ([]entity.Category, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Category, error)
	RenameFunc func(ctx context.Context, id uint, name string) error
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockCategoryUsecase) Create(ctx context.Context, name string) (uint, error) {
	return m.CreateFunc(ctx, name)
}
func (m *mockCategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return m.ListFunc(ctx)
}
func (m *mockCategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return m.GetFunc(ctx, id)
}
func (m *mockCategoryUsecase) Rename(ctx context.Context, id uint, name string) error {
	return m.RenameFunc(ctx, id, name)
}
func (m *mockCategoryUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

type mockCourseUsecase struct {
	CreateFunc  func(ctx context.Context, in usecase.CourseInput) (uint, error)
	ListFunc    func(ctx context.Context) ([]entity.CourseSummary, error)
	DetailsFunc func(ctx context.Context, id uint) (*entity.CourseDetails, error)
	UpdateFunc  func(ctx context.Context, id uint, patch entity.CoursePatch) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockCourseUsecase) Create(ctx context.Context, in usecase.CourseInput) (uint, error) {
	return m.CreateFunc(ctx, in)
}
func (m *mockCourseUsecase) List(ctx context.Context) ([]entity.CourseSummary, error) {
	return m.ListFunc(ctx)
}
func (m *mockCourseUsecase) Details(ctx context.Context, id uint) (*entity.CourseDetails, error) {
	return m.DetailsFunc(ctx, id)
}
func (m *mockCourseUsecase) Update(ctx context.Context, id uint, patch entity.CoursePatch) error {
	return m.UpdateFunc(ctx, id, patch)
}
func (m *mockCourseUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

type mockVideoUsecase struct {
	CreateFunc       func(ctx context.Context, in usecase.VideoInput) (uint, error)
	GetFunc          func(ctx context.Context, id uint) (*entity.Video, error)
	ListFunc         func(ctx context.Context) ([]entity.Video, error)
	ListByCourseFunc func(ctx context.Context, courseID uint) ([]entity.Video, error)
	UpdateFunc       func(ctx context.Context, id uint, patch entity.VideoPatch) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockVideoUsecase) Create(ctx context.Context, in usecase.VideoInput) (uint, error) {
	return m.CreateFunc(ctx, in)
}
func (m *mockVideoUsecase) Get(ctx context.Context, id uint) (*entity.Video, error) {
	return m.GetFunc(ctx, id)
}
func (m *mockVideoUsecase) List(ctx context.Context) ([]entity.Video, error) {
	return m.ListFunc(ctx)
}
func (m *mockVideoUsecase) ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error) {
	return m.ListByCourseFunc(ctx, courseID)
}
func (m *mockVideoUsecase) Update(ctx context.Context, id uint, patch entity.VideoPatch) error {
	return m.UpdateFunc(ctx, id, patch)
}
func (m *mockVideoUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

// perform sends a request through router and returns the recorder.
func perform(router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
