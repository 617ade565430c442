package dto

import "course_backend/internal/feature/catalog/domain/entity"

// CreateVideoReq is the body of /videos/add.
type CreateVideoReq struct {
	Title    *string `json:"title" binding:"required"`
	URL      *string `json:"url" binding:"required"`
	Resume   string  `json:"resume"`
	CourseID *uint   `json:"course_id" binding:"required"`
}

// UpdateVideoReq is the body of /videos/:id/update. Absent fields are left untouched.
type UpdateVideoReq struct {
	Title    *string `json:"title"`
	Resume   *string `json:"resume"`
	URL      *string `json:"url"`
	CourseID *uint   `json:"course_id"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateVideoReq) ToPatch() entity.VideoPatch {
	return entity.VideoPatch{
		Title:    r.Title,
		Resume:   r.Resume,
		URL:      r.URL,
		CourseID: r.CourseID,
	}
}

// VideoRes is the response body for GET /videos/:id.
type VideoRes struct {
	Message string       `json:"message"`
	Video   entity.Video `json:"video"`
}

// VideoListRes wraps a list of videos.
type VideoListRes struct {
	Message string         `json:"message"`
	Videos  []entity.Video `json:"videos"`
}
