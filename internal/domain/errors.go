package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when a lookup by id yields no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a mutation input fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrReferenceNotFound is returned when a show references a venue or artist that does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")
	// ErrConsistency signals a violated structural invariant in stored data.
	ErrConsistency = errors.New("store consistency violation")
	// ErrPersistence is returned when a transaction could not be committed.
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError carries field-level messages for a rejected input.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []string
}

// NewValidationError returns nil when msgs is empty.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Fields: msgs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
