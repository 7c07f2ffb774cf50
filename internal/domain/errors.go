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

	// ErrStorageUnavailable reports a transport or engine fault in a storage backend:
	// lost connections, pool exhaustion, busy database files, operation timeouts.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrPersistenceFailed is returned by AddTopic when the final write fails.
	// It is always joined with the underlying cause.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// ErrDuplicateUser is returned when a username is already taken.
// errors.Is(err, ErrAlreadyExists) holds for it as well.
var ErrDuplicateUser = fmt.Errorf("username %w", ErrAlreadyExists)

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
