package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for service operations.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists indicates a create collided with an existing resource.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrBranchConflict indicates a compare-and-append lost the race for a
	// snapshot index too many times in a row.
	ErrBranchConflict = errors.New("branch append conflict")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
