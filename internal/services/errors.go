package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrNoActiveOffer   = fmt.Errorf("active offer %w", ErrNotFound)
)

// ValidationError reports a malformed or out-of-range request value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
