// Package dto defines data transfer objects for the catalog feature's HTTP transport layer.
package dto

import "course_backend/internal/feature/catalog/domain/entity"

// MessageRes is the minimal response body shared by every endpoint.
type MessageRes struct {
	Message string `json:"message"`
}

// CreatedRes is returned by every add endpoint.
type CreatedRes struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// CategoryReq is the body of /categories/add and /categories/:id/update.
// Name is a pointer so that a present but blank name reaches validation.
type CategoryReq struct {
	Name *string `json:"name" binding:"required"`
}

// CategoryListRes is the response body for GET /categories.
type CategoryListRes struct {
	Message    string            `json:"message"`
	Categories []entity.Category `json:"categories"`
}

// CategoryRes is the response body for GET /categories/:id.
type CategoryRes struct {
	Message  string          `json:"message"`
	Category entity.Category `json:"category"`
}
