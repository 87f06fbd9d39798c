package service

import (
	"errors"
	"fmt"
)

var (
	// ErrExternalService is returned when the embedding or generation
	// capability is unreachable or returns malformed output.
	ErrExternalService = errors.New("external service error")
	// ErrStore is returned on vector store read/write failures.
	ErrStore = errors.New("store error")
)

// ValidationError represents a validation error with a field name.
// It is raised before any external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
