package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
)

// Progression error kinds. Callers decode them with errors.Is.
var (
	// ErrInvalidReference means the referenced catalog content is missing or inactive.
	ErrInvalidReference = errors.New("invalid content reference")
	// ErrUnsupportedActivityType means the activity type cannot be recorded through the requested path.
	ErrUnsupportedActivityType = errors.New("unsupported activity type")
	// ErrBadgeCatalogMiss means a threshold names a badge that has no catalog row.
	// It is logged and skipped, never returned from a recording operation.
	ErrBadgeCatalogMiss = errors.New("badge catalog miss")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
