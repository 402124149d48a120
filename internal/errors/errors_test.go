package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestInputError(t *testing.T) {
	t.Parallel()
	err := NewInputError("bad frequency %q", "1.2.3")
	if err.Error() != `bad frequency "1.2.3"` {
		t.Errorf("Unexpected message: %s", err)
	}
	var inputErr InputError
	if !errors.As(err, &inputErr) {
		t.Error("errors.As should match InputError")
	}
}

func TestSolveError(t *testing.T) {
	t.Parallel()
	cause := errors.New("numerator overflow")
	err := NewSolveError(cause)
	if !errors.Is(err, cause) {
		t.Error("SolveError should unwrap to its cause")
	}
	if err.Error() != "solver failed: numerator overflow" {
		t.Errorf("Unexpected message: %s", err)
	}
	if NewSolveError(nil) != nil {
		t.Error("NewSolveError(nil) should be nil")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	base := errors.New("base")
	wrapped := WrapError(base, "context %d", 42)
	if !errors.Is(wrapped, base) {
		t.Error("Wrapped error should match the base error")
	}
	if wrapped.Error() != "context 42: base" {
		t.Errorf("Unexpected message: %s", wrapped)
	}
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	if !IsContextError(context.Canceled) {
		t.Error("context.Canceled should be a context error")
	}
	if !IsContextError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)) {
		t.Error("Wrapped DeadlineExceeded should be a context error")
	}
	if IsContextError(errors.New("other")) {
		t.Error("Unrelated errors are not context errors")
	}
	if IsContextError(nil) {
		t.Error("nil is not a context error")
	}
}
