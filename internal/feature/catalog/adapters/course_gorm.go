package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "course_backend/internal/feature/auth/domain/entity"
	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/usecase"
)

// courseGorm is the GORM implementation of usecase.CourseRepository.
type courseGorm struct {
	db *gorm.DB
}

var _ usecase.CourseRepository = (*courseGorm)(nil)

// NewCourseRepository creates a course repository on the given connection.
func NewCourseRepository(db *gorm.DB) *courseGorm {
	return &courseGorm{db: db}
}

// Create inserts a course whose teacher and category both exist.
func (r *courseGorm) Create(ctx context.Context, c *entity.Course) error {
	m := CourseModelFromEntity(c)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCourseRefs(tx, &c.TeacherID, &c.CategoryID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(m).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return r.missingRef(ctx, c.TeacherID, c.CategoryID)
	}
	if err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

// List returns every course with its category name, ordered by id.
func (r *courseGorm) List(ctx context.Context) ([]entity.CourseSummary, error) {
	var out []entity.CourseSummary
	err := r.db.WithContext(ctx).
		Table("courses").
		Select("courses.id AS id, courses.title AS title, categories.name AS category").
		Joins("JOIN categories ON categories.id = courses.category_id").
		Order("courses.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.CourseSummary{}
	}
	return out, nil
}

// FindByID returns usecase.ErrCourseNotFound when the id does not resolve.
func (r *courseGorm) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var m CourseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCourseNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

type courseDetailsRow struct {
	ID          uint
	Title       string
	Description string
	Teacher     string
	Category    string
}

// FindDetails joins the course with its teacher's username, its category
// name and its videos ordered by id.
func (r *courseGorm) FindDetails(ctx context.Context, id uint) (*entity.CourseDetails, error) {
	db := r.db.WithContext(ctx)

	var row courseDetailsRow
	res := db.Table("courses").
		Select("courses.id AS id, courses.title AS title, courses.description AS description, " +
			"users.username AS teacher, categories.name AS category").
		Joins("JOIN users ON users.id = courses.teacher_id").
		Joins("JOIN categories ON categories.id = courses.category_id").
		Where("courses.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrCourseNotFound
	}

	var videos []VideoModel
	if err := db.Where("course_id = ?", id).Order("id ASC").Find(&videos).Error; err != nil {
		return nil, err
	}
	details := &entity.CourseDetails{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Teacher:     row.Teacher,
		Category:    row.Category,
		Videos:      make([]entity.Video, len(videos)),
	}
	for i := range videos {
		details.Videos[i] = videos[i].ToEntity()
	}
	return details, nil
}

// Update applies the present fields of patch in one statement.
// Reference fields are re-validated inside the same transaction.
func (r *courseGorm) Update(ctx context.Context, id uint, patch entity.CoursePatch) error {
	var current CourseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrCourseNotFound
			}
			return err
		}
		if patch.IsEmpty() {
			return nil
		}
		if err := checkCourseRefs(tx, patch.TeacherID, patch.CategoryID); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.TeacherID != nil {
			updates["teacher_id"] = *patch.TeacherID
		}
		if patch.CategoryID != nil {
			updates["category_id"] = *patch.CategoryID
		}
		return tx.Model(&CourseModel{}).Where("id = ?", id).Updates(updates).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		teacherID, categoryID := current.TeacherID, current.CategoryID
		if patch.TeacherID != nil {
			teacherID = *patch.TeacherID
		}
		if patch.CategoryID != nil {
			categoryID = *patch.CategoryID
		}
		return r.missingRef(ctx, teacherID, categoryID)
	}
	return err
}

// Delete removes the course's videos and then the course in one
// transaction. Any failure rolls both back.
func (r *courseGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &CourseModel{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrCourseNotFound
		}
		if err := tx.Where("course_id = ?", id).Delete(&VideoModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&CourseModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCourseNotFound
		}
		return nil
	})
}

// checkCourseRefs verifies the teacher and category ids that are set.
func checkCourseRefs(tx *gorm.DB, teacherID, categoryID *uint) error {
	if teacherID != nil {
		ok, err := exists(tx, &authentity.User{}, *teacherID)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrTeacherNotFound
		}
	}
	if categoryID != nil {
		ok, err := exists(tx, &CategoryModel{}, *categoryID)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrCategoryNotFound
		}
	}
	return nil
}

// missingRef names the reference that disappeared after a foreign key
// violation raised by the database.
func (r *courseGorm) missingRef(ctx context.Context, teacherID, categoryID uint) error {
	if err := checkCourseRefs(r.db.WithContext(ctx), &teacherID, &categoryID); err != nil {
		return err
	}
	return usecase.ErrCategoryNotFound
}
