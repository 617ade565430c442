// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or blank.
	ErrInvalidInput = errors.New("invalid data")

	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCourseNotFound is returned when a course id does not resolve.
	ErrCourseNotFound = errors.New("course not found")

	// ErrVideoNotFound is returned when a video id does not resolve.
	ErrVideoNotFound = errors.New("video not found")

	// ErrTeacherNotFound is returned when a teacher id does not resolve to a user.
	ErrTeacherNotFound = errors.New("teacher not found")

	// ErrCategoryAlreadyExists is returned when a category name is taken.
	ErrCategoryAlreadyExists = errors.New("category already exist")

	// ErrVideoURLAlreadyExists is returned when a video url is taken.
	ErrVideoURLAlreadyExists = errors.New("video url already exist")

	// ErrCategoryInUse is returned when deleting a category that still has courses.
	ErrCategoryInUse = errors.New("category has courses")
)

// ValidationError reports a present but blank field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " cannot be empty"
}

// Unwrap lets callers match any ValidationError with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
