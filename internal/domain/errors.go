package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is wrapped by every input validation error below, so
	// callers can treat them uniformly.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an entity ID is empty.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrEmptyText is returned when a pair's front or back is empty after trimming.
	ErrEmptyText = fmt.Errorf("%w: pair text cannot be empty", ErrValidation)

	// ErrEmptyListName is returned when a list name is empty after trimming.
	ErrEmptyListName = fmt.Errorf("%w: list name cannot be empty", ErrValidation)

	// ErrInvalidDirection is returned for a direction other than forward or reverse.
	ErrInvalidDirection = fmt.Errorf("%w: invalid direction", ErrValidation)

	// ErrListNotFound is returned when a referenced list does not exist.
	ErrListNotFound = errors.New("list not found")

	// ErrPairNotFound is returned when a referenced pair does not exist.
	ErrPairNotFound = errors.New("pair not found")
)
