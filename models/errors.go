package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no food matches an identifier.
	ErrNotFound = errors.New("food not found")

	// ErrInvalidIdentifier matches any *InvalidIdentifierError via errors.Is.
	ErrInvalidIdentifier = errors.New("invalid food id")
)

// InvalidIdentifierError reports a path id that is not a well-formed ObjectID.
type InvalidIdentifierError struct {
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid food id %q", e.Value)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// FieldError describes a single rejected field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by ParseFood when the body is malformed or a
// required field is missing or has the wrong shape.
type ValidationError struct {
	Fields []FieldError
	// Cause is set when the body could not be decoded at all.
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil && len(e.Fields) == 0 {
		return "invalid request body: " + e.Cause.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid request body: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
