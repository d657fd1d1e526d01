package scratch

import "errors"

// ErrClosed indicates an operation on a Space that was already closed.
var ErrClosed = errors.New("scratch: space closed")
