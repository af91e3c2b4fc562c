package errors

import (
	"net/http"
	"strings"
)

// ValidationCode is the envelope code of every validation failure.
const ValidationCode = "VALIDATION_ERROR"

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError lists every field-level violation found in one request, in input order.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a validation error from the given violations
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Path+": "+v.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Name() string {
	return "Validation Error"
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) Message() string {
	return "Invalid input data."
}

func (e *ValidationError) Operational() bool {
	return true
}
