package dto

import "course_backend/internal/feature/catalog/domain/entity"

// CreateCourseReq is the body of /courses/add.
type CreateCourseReq struct {
	Title       *string `json:"title" binding:"required"`
	Description string  `json:"description"`
	TeacherID   *uint   `json:"teacher_id" binding:"required"`
	CategoryID  *uint   `json:"category_id" binding:"required"`
}

// UpdateCourseReq is the body of /courses/:id/update. Absent fields are left untouched.
type UpdateCourseReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TeacherID   *uint   `json:"teacher_id"`
	CategoryID  *uint   `json:"category_id"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCourseReq) ToPatch() entity.CoursePatch {
	return entity.CoursePatch{
		Title:       r.Title,
		Description: r.Description,
		TeacherID:   r.TeacherID,
		CategoryID:  r.CategoryID,
	}
}

// CourseListRes is the response body for GET /courses.
type CourseListRes struct {
	Message string                 `json:"message"`
	Courses []entity.CourseSummary `json:"courses"`
}

// CourseDetailsRes is the response body for GET /courses/:id.
type CourseDetailsRes struct {
	Message string               `json:"message"`
	Course  entity.CourseDetails `json:"course"`
}
