package counter

import (
	"errors"
	"fmt"
)

// ErrInvalidText is wrapped by every DecodeError.
var ErrInvalidText = errors.New("invalid text encoding")

// DecodeError reports a file whose bytes are not valid UTF-8.
type DecodeError struct {
	Path   string
	Offset int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s as UTF-8: invalid byte at offset %d", e.Path, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidText
}

// PermissionError reports a directory that could not be listed.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("access to %s was denied", e.Path)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}
