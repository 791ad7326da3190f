package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRegistrationClosed is returned when an event's date and time are
	// at or before the current moment.
	ErrRegistrationClosed = errors.New("event date or time has passed, registration is closed")

	// ErrAlreadyRegistered is returned when a participant already holds a
	// registration for the event.
	ErrAlreadyRegistered = errors.New("participant is already registered for this event")

	// ErrDuplicateEmail is returned by the participant repository when an
	// insert collides with the unique email constraint.
	ErrDuplicateEmail = errors.New("participant email already exists")

	// ErrInvalidInput is returned when a request is structurally invalid
	// (e.g. a registration referencing missing ids).
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries field-scoped validation messages. It is returned
// by input validation so controllers can render per-field detail.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
