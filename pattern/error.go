package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern indicates a mask pattern string could not be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")

// CompileError describes why a pattern was rejected.
type CompileError struct {
	Pattern string
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("pattern %q: %s", e.Pattern, e.Message)
	}
	return "pattern: " + e.Message
}

// Unwrap returns ErrInvalidPattern so callers can match with errors.Is.
func (e *CompileError) Unwrap() error {
	return ErrInvalidPattern
}
