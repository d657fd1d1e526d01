package binfile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a malformed or out-of-range argument.
	ErrInvalidArgument = errors.New("binfile: invalid argument")

	// ErrRefused indicates the operation is not allowed on this file: opening a
	// hidden or system file, or modifying a readonly one.
	ErrRefused = errors.New("binfile: refused")

	// ErrShortRead indicates fewer bytes were available than requested.
	ErrShortRead = errors.New("binfile: short read")

	// ErrNotReady indicates the file was closed.
	ErrNotReady = errors.New("binfile: file not open")

	// ErrIO wraps failures of the underlying storage.
	ErrIO = errors.New("binfile: I/O failure")
)

// ShortReadError reports how many bytes a failed exact-count read could have
// returned. It matches ErrShortRead with errors.Is.
type ShortReadError struct {
	Want int64
	Got  int64
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("binfile: short read: wanted %d bytes, only %d available", e.Want, e.Got)
}

func (e *ShortReadError) Unwrap() error { return ErrShortRead }

func ioErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}

func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
