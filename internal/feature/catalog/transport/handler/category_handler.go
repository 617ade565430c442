package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/transport/http/dto"
)

// CategoryUsecase defines the category operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CategoryUsecase interface {
	Create(ctx context.Context, name string) (uint, error)
	List(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create handles POST /categories/add.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, "create category", err)
		return
	}
	id, err := h.uc.Create(c.Request.Context(), *req.Name)
	if err != nil {
		respondError(c, "create category", err)
		return
	}
	slog.Info("category created", "category_id", id)
	c.JSON(http.StatusCreated, dto.CreatedRes{Message: "Category created successfully", ID: id})
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.List(c.Request.Context())
	if err != nil {
		respondError(c, "list categories", err)
		return
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	c.JSON(http.StatusOK, dto.CategoryListRes{Message: "ok", Categories: categories})
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Category not found"})
		return
	}
	category, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get category", err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryRes{Message: "ok", Category: *category})
}

// Update handles PUT /categories/:id/update.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Category not found"})
		return
	}
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, "update category", err)
		return
	}
	if err := h.uc.Rename(c.Request.Context(), id, *req.Name); err != nil {
		respondError(c, "update category", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Category successfully updated"})
}

// Delete handles DELETE /categories/:id/delete.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Category not found"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete category", err)
		return
	}
	slog.Info("category deleted", "category_id", id)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Category successfully deleted"})
}
