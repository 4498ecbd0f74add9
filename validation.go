package ensaios

import (
	"errors"
	"fmt"
)

// ValidationError reports a user input mistake: a missing field for the
// chosen sale status, a duplicate or empty roster name, an unknown session.
// It is always recoverable; commands print it and leave the book untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// verrf builds a ValidationError the fmt way.
func verrf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
