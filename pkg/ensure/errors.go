package ensure

import (
	"errors"
	"fmt"
)

// ValidationError reports an expected-shape mismatch on user-supplied data.
// It carries a single fully formatted, human-readable message and is always
// recoverable by the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AssertionError signals a programming defect (a failed predicate or
// unreachable code), as opposed to invalid external input. It should be
// escalated rather than caught and ignored.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string { return e.Message }

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAssertionError reports whether err is (or wraps) an AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
