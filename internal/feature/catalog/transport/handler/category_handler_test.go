package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/transport/handler"
	"course_backend/internal/feature/catalog/usecase"
)

func categoryRouter(uc *mockCategoryUsecase) *gin.Engine {
	h := handler.NewCategoryHandler(uc)
	r := gin.New()
	r.POST("/categories/add", h.Create)
	r.GET("/categories", h.List)
	r.GET("/categories/:id", h.Get)
	r.PUT("/categories/:id/update", h.Update)
	r.DELETE("/categories/:id/delete", h.Delete)
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		createErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			body:           `{"name":"Math"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"Category created successfully","id":1}`,
		},
		{
			name:           "missing name",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid data"}`,
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid data"}`,
		},
		{
			name:           "blank name",
			body:           `{"name":"  "}`,
			createErr:      &usecase.ValidationError{Field: "name"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Name cannot be empty"}`,
		},
		{
			name:           "duplicate is a 400",
			body:           `{"name":"Math"}`,
			createErr:      usecase.ErrCategoryAlreadyExists,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Category already exist"}`,
		},
		{
			name:           "unexpected error",
			body:           `{"name":"Math"}`,
			createErr:      errInternal,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"internal server error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockCategoryUsecase{
				CreateFunc: func(ctx context.Context, name string) (uint, error) {
					if tt.createErr != nil {
						return 0, tt.createErr
					}
					assert.Equal(t, "Math", name)
					return 1, nil
				},
			}
			w := perform(categoryRouter(uc), http.MethodPost, "/categories/add", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCategoryHandler_List(t *testing.T) {
	t.Run("wraps the list", func(t *testing.T) {
		uc := &mockCategoryUsecase{
			ListFunc: func(ctx context.Context) ([]entity.Category, error) {
				return []entity.Category{{ID: 1, Name: "Math"}}, nil
			},
		}
		w := perform(categoryRouter(uc), http.MethodGet, "/categories", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"ok","categories":[{"id":1,"name":"Math"}]}`, w.Body.String())
	})

	t.Run("empty list is an array", func(t *testing.T) {
		uc := &mockCategoryUsecase{
			ListFunc: func(ctx context.Context) ([]entity.Category, error) { return nil, nil },
		}
		w := perform(categoryRouter(uc), http.MethodGet, "/categories", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"ok","categories":[]}`, w.Body.String())
	})
}

func TestCategoryHandler_GetUpdateDelete(t *testing.T) {
	uc := &mockCategoryUsecase{
		GetFunc: func(ctx context.Context, id uint) (*entity.Category, error) {
			if id == 1 {
				return &entity.Category{ID: 1, Name: "Math"}, nil
			}
			return nil, usecase.ErrCategoryNotFound
		},
		RenameFunc: func(ctx context.Context, id uint, name string) error {
			if id != 1 {
				return usecase.ErrCategoryNotFound
			}
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			if id == 1 {
				return usecase.ErrCategoryInUse
			}
			return nil
		},
	}
	router := categoryRouter(uc)

	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"get", http.MethodGet, "/categories/1", "", http.StatusOK, `{"message":"ok","category":{"id":1,"name":"Math"}}`},
		{"get unknown", http.MethodGet, "/categories/2", "", http.StatusNotFound, `{"message":"Category not found"}`},
		{"get malformed id", http.MethodGet, "/categories/abc", "", http.StatusNotFound, `{"message":"Category not found"}`},
		{"rename", http.MethodPut, "/categories/1/update", `{"name":"Algebra"}`, http.StatusOK, `{"message":"Category successfully updated"}`},
		{"rename unknown", http.MethodPut, "/categories/2/update", `{"name":"Algebra"}`, http.StatusNotFound, `{"message":"Category not found"}`},
		{"rename without name", http.MethodPut, "/categories/1/update", `{}`, http.StatusBadRequest, `{"message":"Invalid data"}`},
		{"delete in use", http.MethodDelete, "/categories/1/delete", "", http.StatusBadRequest, `{"message":"Category has courses"}`},
		{"delete", http.MethodDelete, "/categories/3/delete", "", http.StatusOK, `{"message":"Category successfully deleted"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, tt.method, tt.url, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
