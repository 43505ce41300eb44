package store

import "fmt"

// ValidationError means the caller supplied empty or otherwise invalid input.
// The operation is rejected before any mutation happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced deck or card index does not exist.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Reason
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Reason: fmt.Sprintf(format, args...)}
}
