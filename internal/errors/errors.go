// Package apperrors defines structured application error types, allowing
// for a clear distinction between error classes (input processing versus
// solver failures) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapping error types implement the Unwrap() method to support errors.Is()
// and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the tool.
// The first three match the contract documented in the usage text; 130 is
// the conventional status for termination by SIGINT.
const (
	ExitSuccess       = 0   // Solutions were found and written.
	ExitNoSolution    = 1   // The search completed but found no solution.
	ExitErrorInput    = 2   // Input processing or solver error.
	ExitErrorCanceled = 130 // The search was canceled (e.g., SIGINT).
)

// InputError represents a user input error, such as a malformed frequency
// literal, invalid flags or inconsistent limit overrides. It indicates the
// tool cannot proceed due to incorrect user input.
type InputError struct {
	// Message explains the specific input error.
	Message string
}

// Error returns the error message for an InputError.
func (e InputError) Error() string { return e.Message }

// NewInputError creates a new InputError with a formatted message.
func NewInputError(format string, a ...any) error {
	return InputError{Message: fmt.Sprintf(format, a...)}
}

// SolveError encapsulates a solver failure while preserving the original
// cause, typically an arithmetic overflow inside the rational search.
type SolveError struct {
	// Cause is the underlying error that triggered this solve error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e SolveError) Error() string { return "solver failed: " + e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e SolveError) Unwrap() error { return e.Cause }

// NewSolveError wraps a solver failure cause. Returns nil for a nil cause.
func NewSolveError(cause error) error {
	if cause == nil {
		return nil
	}
	return SolveError{Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
