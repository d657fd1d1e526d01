package session

import "errors"

var (
	// ErrNoFile is returned by file commands when nothing is open.
	ErrNoFile = errors.New("no file open")

	// ErrNoClipboard is returned by COPY and PASTE when the session has no clipboard.
	ErrNoClipboard = errors.New("clipboard is not available")
)
