// Package adapters provides the GORM repositories of the catalog feature.
package adapters

import (
	"gorm.io/gorm"

	authentity "course_backend/internal/feature/auth/domain/entity"
	"course_backend/internal/feature/catalog/domain/entity"
)

// CategoryModel is the GORM model for the categories table.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:80;not null;uniqueIndex"`
}

// TableName returns the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CategoryModel) ToEntity() entity.Category {
	return entity.Category{ID: m.ID, Name: m.Name}
}

// CourseModel is the GORM model for the courses table.
// The association fields exist only so AutoMigrate emits foreign keys;
// writes always omit them.
type CourseModel struct {
	ID          uint             `gorm:"primaryKey"`
	Title       string           `gorm:"size:120;not null"`
	Description string           `gorm:"type:text"`
	TeacherID   uint             `gorm:"not null;index"`
	Teacher     *authentity.User `gorm:"foreignKey:TeacherID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CategoryID  uint             `gorm:"not null;index"`
	Category    *CategoryModel   `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CourseModel) ToEntity() *entity.Course {
	return &entity.Course{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		TeacherID:   m.TeacherID,
		CategoryID:  m.CategoryID,
	}
}

// CourseModelFromEntity converts a domain entity to a GORM model.
func CourseModelFromEntity(c *entity.Course) *CourseModel {
	return &CourseModel{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		TeacherID:   c.TeacherID,
		CategoryID:  c.CategoryID,
	}
}

// VideoModel is the GORM model for the videos table.
// Deleting a course removes its videos explicitly, so the database only
// restricts.
type VideoModel struct {
	ID       uint         `gorm:"primaryKey"`
	Title    string       `gorm:"size:120;not null"`
	Resume   string       `gorm:"type:text"`
	URL      string       `gorm:"size:2048;not null;uniqueIndex"`
	CourseID uint         `gorm:"not null;index"`
	Course   *CourseModel `gorm:"foreignKey:CourseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// ToEntity converts the GORM model to a domain entity.
func (m *VideoModel) ToEntity() entity.Video {
	return entity.Video{
		ID:       m.ID,
		Title:    m.Title,
		Resume:   m.Resume,
		URL:      m.URL,
		CourseID: m.CourseID,
	}
}

// VideoModelFromEntity converts a domain entity to a GORM model.
func VideoModelFromEntity(v *entity.Video) *VideoModel {
	return &VideoModel{
		ID:       v.ID,
		Title:    v.Title,
		Resume:   v.Resume,
		URL:      v.URL,
		CourseID: v.CourseID,
	}
}

// Models lists the catalog tables in dependency order for AutoMigrate.
// Users must be migrated before them.
func Models() []interface{} {
	return []interface{}{&CategoryModel{}, &CourseModel{}, &VideoModel{}}
}

// exists reports whether a row with the given id is present in model's table.
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
