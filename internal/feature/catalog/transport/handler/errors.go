// Package handler provides HTTP handlers for the catalog feature.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/catalog/transport/http/dto"
	"course_backend/internal/feature/catalog/usecase"
	"course_backend/internal/platform/validation"
)

// errorResponse maps a usecase error to a status code and message.
// Duplicates are answered with 400 like any other bad input.
func errorResponse(err error) (int, string) {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, capitalize(vErr.Error())
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid data"
	case errors.Is(err, usecase.ErrCategoryAlreadyExists):
		return http.StatusBadRequest, "Category already exist"
	case errors.Is(err, usecase.ErrVideoURLAlreadyExists):
		return http.StatusBadRequest, "Video url already exist"
	case errors.Is(err, usecase.ErrCategoryInUse):
		return http.StatusBadRequest, "Category has courses"
	case errors.Is(err, usecase.ErrTeacherNotFound):
		return http.StatusNotFound, "Teacher not found"
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, usecase.ErrCourseNotFound):
		return http.StatusNotFound, "Course not found"
	case errors.Is(err, usecase.ErrVideoNotFound):
		return http.StatusNotFound, "Video not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError writes the mapped error and logs it at a level matching the status.
func respondError(c *gin.Context, op string, err error) {
	status, msg := errorResponse(err)
	if status >= http.StatusInternalServerError {
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
	} else {
		slog.Warn(op+" rejected", "error", err, "remote_addr", c.ClientIP())
	}
	c.JSON(status, dto.MessageRes{Message: msg})
}

// invalidBody answers a body that could not be bound.
func invalidBody(c *gin.Context, op string, err error) {
	slog.Warn(op+" validation failed", "fields", validation.Fields(err), "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "Invalid data"})
}

// pathID parses the :id path parameter. A malformed id cannot match any row,
// so callers answer it with their not-found message.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
