package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/catalog/domain/entity"
	"course_backend/internal/feature/catalog/transport/http/dto"
	"course_backend/internal/feature/catalog/usecase"
)

// VideoUsecase defines the video operations used by the handler.
type VideoUsecase interface {
	Create(ctx context.Context, in usecase.VideoInput) (uint, error)
	Get(ctx context.Context, id uint) (*entity.Video, error)
	List(ctx context.Context) ([]entity.Video, error)
	ListByCourse(ctx context.Context, courseID uint) ([]entity.Video, error)
	Update(ctx context.Context, id uint, patch entity.VideoPatch) error
	Delete(ctx context.Context, id uint) error
}

// VideoHandler handles HTTP requests for videos.
type VideoHandler struct {
	uc VideoUsecase
}

// NewVideoHandler creates a new VideoHandler instance.
func NewVideoHandler(uc VideoUsecase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

// Create handles POST /videos/add.
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.CreateVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, "create video", err)
		return
	}
	id, err := h.uc.Create(c.Request.Context(), usecase.VideoInput{
		Title:    *req.Title,
		Resume:   req.Resume,
		URL:      *req.URL,
		CourseID: *req.CourseID,
	})
	if errors.Is(err, usecase.ErrCourseNotFound) {
		slog.Warn("create video rejected", "error", err, "course_id", *req.CourseID)
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "The course mentioned in this video does not exist."})
		return
	}
	if err != nil {
		respondError(c, "create video", err)
		return
	}
	slog.Info("video created", "video_id", id)
	c.JSON(http.StatusCreated, dto.CreatedRes{Message: "Video successfully added", ID: id})
}

// Get handles GET /videos/:id.
func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Video not found"})
		return
	}
	video, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get video", err)
		return
	}
	c.JSON(http.StatusOK, dto.VideoRes{Message: "ok", Video: *video})
}

// List handles GET /videos.
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.uc.List(c.Request.Context())
	if err != nil {
		respondError(c, "list videos", err)
		return
	}
	c.JSON(http.StatusOK, dto.VideoListRes{Message: "ok", Videos: videos})
}

// ListByCourse handles GET /courses/:id/videos.
func (h *VideoHandler) ListByCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Course not found"})
		return
	}
	videos, err := h.uc.ListByCourse(c.Request.Context(), id)
	if err != nil {
		respondError(c, "list course videos", err)
		return
	}
	c.JSON(http.StatusOK, dto.VideoListRes{Message: "ok", Videos: videos})
}

// Update handles PUT /videos/:id/update.
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Video not found"})
		return
	}
	var req dto.UpdateVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, "update video", err)
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		respondError(c, "update video", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Video successfully updated"})
}

// Delete handles DELETE /videos/:id/delete.
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.MessageRes{Message: "Video not found"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete video", err)
		return
	}
	slog.Info("video deleted", "video_id", id)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Video successfully deleted"})
}
