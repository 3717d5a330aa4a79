package linereader

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle    = errors.New("invalid handle")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrLineTooLong      = errors.New("line too long")
	ErrUnknownHandle    = errors.New("unknown handle")
)

// ReadError is returned when the underlying read fails. Data accumulated by
// the failed call is discarded.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read: %v", e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }
