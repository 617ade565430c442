package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/usecase"
)

// videoGorm is the GORM implementation of usecase.VideoRepository.
type videoGorm struct {
	db *gorm.DB
}

var _ usecase.VideoRepository = (*videoGorm)(nil)

// NewVideoRepository creates a video repository on the given connection.
func NewVideoRepository(db *gorm.DB) *videoGorm {
	return &videoGorm{db: db}
}

// Create inserts a video into an existing course. The url must be unused.
func (r *videoGorm) Create(ctx context.Context, v *entity.Video) error {
	m := VideoModelFromEntity(v)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &CourseModel{}, v.CourseID)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrCourseNotFound
		}
		taken, err := urlTaken(tx, v.URL, 0)
		if err != nil {
			return err
		}
		if taken {
			return usecase.ErrVideoURLAlreadyExists
		}
		return tx.Omit(clause.Associations).Create(m).Error
	})
	if err = translateVideoErr(err); err != nil {
		return err
	}
	v.ID = m.ID
	return nil
}

// List returns every video ordered by id.
func (r *videoGorm) List(ctx context.Context) ([]entity.Video, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByCourse returns the videos of one course ordered by id.
// An unknown course yields an empty list.
func (r *videoGorm) ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error) {
	return r.find(r.db.WithContext(ctx).Where("course_id = ?", courseID))
}

func (r *videoGorm) find(q *gorm.DB) ([]entity.Video, error) {
	var models []VideoModel
	if err := q.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Video, len(models))
	for i := range models {
		out[i] = models[i].ToEntity()
	}
	return out, nil
}

// FindByID returns usecase.ErrVideoNotFound when the id does not resolve.
func (r *videoGorm) FindByID(ctx context.Context, id uint) (*entity.Video, error) {
	var m VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrVideoNotFound
		}
		return nil, err
	}
	v := m.ToEntity()
	return &v, nil
}

// Update applies the present fields of patch in one statement.
func (r *videoGorm) Update(ctx context.Context, id uint, patch entity.VideoPatch) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &VideoModel{}, id)
		if err != nil {
			return err
		}
		if !ok {
			return usecase.ErrVideoNotFound
		}
		if patch.IsEmpty() {
			return nil
		}

		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Resume != nil {
			updates["resume"] = *patch.Resume
		}
		if patch.URL != nil {
			taken, err := urlTaken(tx, *patch.URL, id)
			if err != nil {
				return err
			}
			if taken {
				return usecase.ErrVideoURLAlreadyExists
			}
			updates["url"] = *patch.URL
		}
		if patch.CourseID != nil {
			ok, err := exists(tx, &CourseModel{}, *patch.CourseID)
			if err != nil {
				return err
			}
			if !ok {
				return usecase.ErrCourseNotFound
			}
			updates["course_id"] = *patch.CourseID
		}
		return tx.Model(&VideoModel{}).Where("id = ?", id).Updates(updates).Error
	})
	return translateVideoErr(err)
}

// Delete removes a single video.
func (r *videoGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&VideoModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrVideoNotFound
	}
	return nil
}

// urlTaken reports whether a video other than exceptID uses url.
func urlTaken(tx *gorm.DB, url string, exceptID uint) (bool, error) {
	var count int64
	q := tx.Model(&VideoModel{}).Where("url = ?", url)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateVideoErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return usecase.ErrVideoURLAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return usecase.ErrCourseNotFound
	default:
		return err
	}
}
