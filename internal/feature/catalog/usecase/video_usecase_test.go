package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/usecase"
)

func TestVideoUsecase_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         usecase.VideoInput
		repoErr       error
		expectedErr   error
		expectedField string
		expectedCalls int
	}{
		{
			name:          "success",
			input:         usecase.VideoInput{Title: " Intro ", URL: " http://x/1 ", Resume: "r", CourseID: 1},
			expectedCalls: 1,
		},
		{
			name:          "blank title",
			input:         usecase.VideoInput{Title: "", URL: "http://x/1", CourseID: 1},
			expectedErr:   usecase.ErrInvalidInput,
			expectedField: "title",
		},
		{
			name:          "blank url",
			input:         usecase.VideoInput{Title: "Intro", URL: "  ", CourseID: 1},
			expectedErr:   usecase.ErrInvalidInput,
			expectedField: "url",
		},
		{
			name:          "unknown course",
			input:         usecase.VideoInput{Title: "Intro", URL: "http://x/1", CourseID: 9},
			repoErr:       usecase.ErrCourseNotFound,
			expectedErr:   usecase.ErrCourseNotFound,
			expectedCalls: 1,
		},
		{
			name:          "duplicate url",
			input:         usecase.VideoInput{Title: "Intro", URL: "http://x/1", CourseID: 1},
			repoErr:       usecase.ErrVideoURLAlreadyExists,
			expectedErr:   usecase.ErrVideoURLAlreadyExists,
			expectedCalls: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockVideoRepository{
				CreateFunc: func(ctx context.Context, v *entity.Video) error {
					if tt.repoErr != nil {
						return tt.repoErr
					}
					assert.Equal(t, "Intro", v.Title)
					assert.Equal(t, "http://x/1", v.URL)
					assert.Equal(t, "r", v.Resume)
					v.ID = 4
					return nil
				},
			}

			id, err := usecase.NewVideoUsecase(repo, nil).Create(context.Background(), tt.input)

			switch {
			case tt.expectedField != "":
				var vErr *usecase.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.expectedField, vErr.Field)
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, uint(4), id)
			}
			assert.Equal(t, tt.expectedCalls, repo.CreateCalls)
		})
	}
}

func TestVideoUsecase_Update(t *testing.T) {
	t.Run("blank title leaves the video untouched", func(t *testing.T) {
		repo := &mockVideoRepository{}
		err := usecase.NewVideoUsecase(repo, nil).Update(context.Background(), 1, entity.VideoPatch{Title: strPtr("")})

		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		assert.EqualError(t, err, "title cannot be empty")
		assert.Zero(t, repo.UpdateCalls)
	})

	t.Run("blank url after a valid title", func(t *testing.T) {
		repo := &mockVideoRepository{}
		err := usecase.NewVideoUsecase(repo, nil).Update(context.Background(), 1, entity.VideoPatch{
			Title: strPtr("Intro"),
			URL:   strPtr(""),
		})

		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		assert.Zero(t, repo.UpdateCalls)
	})

	t.Run("trims title and url", func(t *testing.T) {
		repo := &mockVideoRepository{
			UpdateFunc: func(ctx context.Context, id uint, patch entity.VideoPatch) error {
				assert.Equal(t, "Intro", *patch.Title)
				assert.Equal(t, "http://x/2", *patch.URL)
				assert.Equal(t, uint(3), *patch.CourseID)
				assert.Nil(t, patch.Resume)
				return nil
			},
		}
		err := usecase.NewVideoUsecase(repo, nil).Update(context.Background(), 1, entity.VideoPatch{
			Title:    strPtr(" Intro"),
			URL:      strPtr("http://x/2 "),
			CourseID: uintPtr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.UpdateCalls)
	})
}

func TestVideoUsecase_Reads(t *testing.T) {
	videos := []entity.Video{{ID: 1, Title: "Intro", URL: "http://x/1", CourseID: 2}}
	repo := &mockVideoRepository{
		ListFunc: func(ctx context.Context) ([]entity.Video, error) { return videos, nil },
		ListByCourseFunc: func(ctx context.Context, courseID uint) ([]entity.Video, error) {
			assert.Equal(t, uint(2), courseID)
			return videos, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Video, error) {
			return nil, usecase.ErrVideoNotFound
		},
		DeleteFunc: func(ctx context.Context, id uint) error { return nil },
	}
	courses := &mockCourseRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Course, error) {
			if id == 2 {
				return &entity.Course{ID: 2}, nil
			}
			return nil, usecase.ErrCourseNotFound
		},
	}
	uc := usecase.NewVideoUsecase(repo, courses)

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, videos, all)

	byCourse, err := uc.ListByCourse(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)

	_, err = uc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, usecase.ErrVideoNotFound)

	assert.NoError(t, uc.Delete(context.Background(), 1))
}

func TestVideoUsecase_ListByCourse_UnknownCourse(t *testing.T) {
	repo := &mockVideoRepository{}
	courses := &mockCourseRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Course, error) {
			return nil, usecase.ErrCourseNotFound
		},
	}

	got, err := usecase.NewVideoUsecase(repo, courses).ListByCourse(context.Background(), 9)

	assert.ErrorIs(t, err, usecase.ErrCourseNotFound)
	assert.Nil(t, got)
}
