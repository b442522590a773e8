package maskdict

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a seek to an absolute offset at or past the
// total keyspace.
var ErrOutOfRange = errors.New("offset out of range")

// SeekError reports a rejected seek. The cursor is left unchanged.
type SeekError struct {
	Offset   uint64
	Keyspace uint64
}

// Error implements the error interface.
func (e *SeekError) Error() string {
	return fmt.Sprintf("seek offset %d past keyspace %d", e.Offset, e.Keyspace)
}

// Unwrap returns ErrOutOfRange so callers can match with errors.Is.
func (e *SeekError) Unwrap() error {
	return ErrOutOfRange
}
