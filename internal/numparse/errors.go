package numparse

import "errors"

var (
	// ErrNotANumber indicates the text is neither a decimal nor a 0x-prefixed hex literal.
	ErrNotANumber = errors.New("numparse: not a number")

	// ErrNotBytes indicates the text is not a whole number of hex byte pairs.
	ErrNotBytes = errors.New("numparse: not a hex byte string")

	// ErrOutOfRange indicates a relative offset moves past the int64 range.
	ErrOutOfRange = errors.New("numparse: offset out of range")
)
