package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSort indicates an unknown browse sort order.
	ErrInvalidSort = errors.New("invalid sort order")
)

// ServiceError wraps unexpected failures with the operation that hit them.
// This allows callers to differentiate failure sources using errors.As
// instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "add_pair", "grade")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
