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

	// ErrInvalidTransition is returned when a status change violates the
	// review state machine (for example approving an already-approved
	// assessment). The wrapping error names the guard that blocked it.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCheckpointFailed is returned when the checkpoint snapshot could
	// not be persisted. The enclosing mutation must abort: no write is
	// allowed to proceed without its pre-image on record.
	ErrCheckpointFailed = errors.New("checkpoint write failed")

	// ErrAdvisoryBackend marks failures of the analysis backend. It is
	// never surfaced by the advisory gateway itself (failures degrade to
	// low-confidence results); it exists so that logs and tests can
	// classify the underlying cause.
	ErrAdvisoryBackend = errors.New("advisory backend error")

	// ErrIDCollision is returned when a freshly generated content-derived
	// id already exists. Ids embed a nanosecond timestamp, so a collision
	// indicates a misconfigured clock or duplicated generator state and is
	// treated as fatal rather than retried.
	ErrIDCollision = errors.New("entity id collision")
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
