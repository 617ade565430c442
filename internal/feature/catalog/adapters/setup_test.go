package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authentity "course_backend/internal/feature/auth/domain/entity"
	"course_backend/internal/platform/db"
)

// setupTestDB prepares an in-memory SQLite database with the users table
// and every catalog table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	models := append([]interface{}{&authentity.User{}}, Models()...)
	require.NoError(t, conn.AutoMigrate(models...), "failed to migrate tables")

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func seedTeacher(t *testing.T, conn *gorm.DB, username string) uint {
	t.Helper()
	u := &authentity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     authentity.RoleStudent,
	}
	require.NoError(t, conn.Create(u).Error)
	return u.ID
}

func seedCategory(t *testing.T, conn *gorm.DB, name string) uint {
	t.Helper()
	m := &CategoryModel{Name: name}
	require.NoError(t, conn.Create(m).Error)
	return m.ID
}

func seedCourse(t *testing.T, conn *gorm.DB, title string, teacherID, categoryID uint) uint {
	t.Helper()
	m := &CourseModel{Title: title, TeacherID: teacherID, CategoryID: categoryID}
	require.NoError(t, conn.Omit("Teacher", "Category").Create(m).Error)
	return m.ID
}

func seedVideo(t *testing.T, conn *gorm.DB, title, url string, courseID uint) uint {
	t.Helper()
	m := &VideoModel{Title: title, URL: url, CourseID: courseID}
	require.NoError(t, conn.Omit("Course").Create(m).Error)
	return m.ID
}

func countRows(t *testing.T, conn *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, conn.Model(model).Count(&n).Error)
	return n
}
