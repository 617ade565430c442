package usecase

import (
	"context"
	"strings"

	"course_backend/internal/feature/catalog/domain/entity"
)

// CategoryUsecase provides business logic for categories.
type CategoryUsecase struct {
	repo CategoryRepository
}

// NewCategoryUsecase creates a new CategoryUsecase with the given repository.
func NewCategoryUsecase(r CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{repo: r}
}

// Create adds a category and returns its id. The name is stored trimmed.
func (u *CategoryUsecase) Create(ctx context.Context, name string) (uint, error) {
	if err := requireText("name", name); err != nil {
		return 0, err
	}
	category := &entity.Category{Name: strings.TrimSpace(name)}
	if err := u.repo.Create(ctx, category); err != nil {
		return 0, err
	}
	return category.ID, nil
}

// List returns every category.
func (u *CategoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.repo.List(ctx)
}

// Get returns one category.
func (u *CategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.repo.FindByID(ctx, id)
}

// Rename changes a category's name.
func (u *CategoryUsecase) Rename(ctx context.Context, id uint, name string) error {
	if err := requireText("name", name); err != nil {
		return err
	}
	return u.repo.Rename(ctx, id, strings.TrimSpace(name))
}

// Delete removes a category. Categories with courses are kept and
// ErrCategoryInUse is returned.
func (u *CategoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
