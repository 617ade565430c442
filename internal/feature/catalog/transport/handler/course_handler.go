package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/transport/http/dto"
	"course_backend/internal/feature/catalog/usecase"
)

// CourseUsecase defines the course operations used by the handler.
type CourseUsecase interface {
	Create(ctx context.Context, in usecase.CourseInput) (uint, error)
	List(ctx context.Context) ([]entity.CourseSummary, error)
	Details(ctx context.Context, id uint) (*entity.CourseDetails, error)
	Update(ctx context.Context, id uint, patch entity.CoursePatch) error
	Delete(ctx context.Context, id uint) error
}

// CourseHandler handles HTTP requests for courses.
type CourseHandler struct {
	uc CourseUsecase
}

// NewCourseHandler creates a new CourseHandler instance.
func NewCourseHandler(uc CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

// Create handles POST /courses/add.
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, "create course", err)
		return
	}
	id, err := h.uc.Create(c.Request.Context(), usecase.CourseInput{
		Title:       *req.Title,
		Description: req.Description,
		TeacherID:   *req.TeacherID,
		CategoryID:  *req.CategoryID,
	})
	if err != nil {
		respondError(c, "create course", err)
		return
	}
	slog.Info("course created", "course_id", id)
	c.JSON(http.StatusCreated, dto.CreatedRes{Message: "Course successfully added", ID: id})
}

// List handles GET /courses.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.uc.List(c.Request.Context())
	if err != nil {
		respondError(c, "list courses", err)
		return
	}
	if courses == nil {
		courses = []entity.CourseSummary{}
	}
	c.JSON(http.StatusOK, dto.CourseListRes{Message: "ok", Courses: courses})
}

// Details handles GET /courses/:id.
func (h *CourseHandler) Details(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Course not found"})
		return
	}
	details, err := h.uc.Details(c.Request.Context(), id)
	if err != nil {
		respondError(c, "course details", err)
		return
	}
	c.JSON(http.StatusOK, dto.CourseDetailsRes{Message: "ok", Course: *details})
}

// Update handles PUT /courses/:id/update.
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Course not found"})
		return
	}
	var req dto.UpdateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, "update course", err)
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, "update course", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Course successfully updated."})
}

// Delete handles DELETE /courses/:id/delete. The course's videos go with it.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Course not found"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete course", err)
		return
	}
	slog.Info("course deleted", "course_id", id)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Course successfully deleted"})
}
