package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/usecase"
)

// categoryGorm is the GORM implementation of usecase.CategoryRepository.
type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryRepository creates a category repository on the given connection.
func NewCategoryRepository(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// Create inserts a category after checking the name is free.
// The unique index still decides when two creates race.
func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	m := &CategoryModel{Name: c.Name}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := r.nameTaken(tx, c.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return usecase.ErrCategoryAlreadyExists
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrCategoryAlreadyExists
		}
		return err
	}
	c.ID = m.ID
	return nil
}

// List returns all categories ordered by id.
func (r *categoryGorm) List(ctx context.Context) ([]entity.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Category, len(models))
	for i := range models {
		out[i] = models[i].ToEntity()
	}
	return out, nil
}

// FindByID returns usecase.ErrCategoryNotFound when the id does not resolve.
func (r *categoryGorm) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var m CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	c := m.ToEntity()
	return &c, nil
}

// Rename updates the name of an existing category.
func (r *categoryGorm) Rename(ctx context.Context, id uint, name string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &CategoryModel{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrCategoryNotFound
		}
		taken, err := r.nameTaken(tx, name, id)
		if err != nil {
			return err
		}
		if taken {
			return usecase.ErrCategoryAlreadyExists
		}
		return tx.Model(&CategoryModel{}).Where("id = ?", id).Update("name", name).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrCategoryAlreadyExists
	}
	return err
}

// Delete removes a category. A category that still has courses is kept
// and usecase.ErrCategoryInUse is returned.
func (r *categoryGorm) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &CategoryModel{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrCategoryNotFound
		}
		var courses int64
		if err := tx.Model(&CourseModel{}).Where("category_id = ?", id).Count(&courses).Error; err != nil {
			return err
		}
		if courses > 0 {
			return usecase.ErrCategoryInUse
		}
		return tx.Delete(&CategoryModel{}, id).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return usecase.ErrCategoryInUse
	}
	return err
}

// nameTaken reports whether another category (id != exceptID) uses name.
func (r *categoryGorm) nameTaken(tx *gorm.DB, name string, exceptID uint) (bool, error) {
	var count int64
	q := tx.Model(&CategoryModel{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
