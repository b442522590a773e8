package charset

import (
	"errors"
	"fmt"
)

// ErrInvalidCharset indicates a custom charset definition could not be
// parsed or expanded to a usable charset.
var ErrInvalidCharset = errors.New("invalid charset definition")

// DefinitionError describes why a custom charset definition was rejected.
type DefinitionError struct {
	Slot    int
	Message string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("charset ?%d: %s", e.Slot, e.Message)
}

// Unwrap returns ErrInvalidCharset so callers can match with errors.Is.
func (e *DefinitionError) Unwrap() error {
	return ErrInvalidCharset
}
