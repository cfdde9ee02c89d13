// Package apperrors defines the error taxonomy shared by the service layer
// and the HTTP handlers. Handlers translate these into the JSON failure
// bodies the dashboard turns into toasts; everything else is a plain 500.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound means the mutation target does not exist anymore, usually
// because another admin deleted it first.
var ErrNotFound = errors.New("record not found")

// ValidationError carries per-field messages. It is rendered inline next to
// the offending fields, never as a toast.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldError builds a single-field ValidationError.
func FieldError(field, message string) *ValidationError {
	e := NewValidationError()
	e.Add(field, message)
	return e
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
