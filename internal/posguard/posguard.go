// Package posguard captures the cursor of a seekable stream and puts it back
// when the guard is released.
//
// A Guard is meant to be released with defer right after it is created, and
// may additionally be released early on the success path:
//
//	g, err := posguard.New(f)
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
//	// ... move the cursor around ...
//	g.Release() // back at the captured position; the deferred call is a no-op
//
// Release never reports an error. A failed restore (for example because the
// stream was closed underneath the guard) is dropped so it cannot mask the
// error that made the caller bail out.
package posguard

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrNotSeekable indicates the stream rejected a Seek at construction time.
var ErrNotSeekable = errors.New("posguard: stream not seekable")

// Guard restores a stream position on Release.
type Guard struct {
	mu       sync.Mutex
	s        io.Seeker
	pos      int64
	restore  bool
	released bool
}

// New records the current position of s. It fails with ErrNotSeekable when s
// cannot report its position, as with pipes and terminals.
func New(s io.Seeker) (*Guard, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil stream", ErrNotSeekable)
	}
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotSeekable, err)
	}
	return &Guard{s: s, pos: pos, restore: true}, nil
}

// Position returns the captured position.
func (g *Guard) Position() int64 { return g.pos }

// SetRestore controls whether Release seeks back to the captured position.
// It is consulted when Release runs, not when it is set.
func (g *Guard) SetRestore(restore bool) {
	g.mu.Lock()
	g.restore = restore
	g.mu.Unlock()
}

// Released reports whether Release has already run.
func (g *Guard) Released() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.released
}

// Release seeks back to the captured position unless restoring was disabled.
// Only the first call has any effect.
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return
	}
	g.released = true

	if !g.restore {
		return
	}
	_, _ = g.s.Seek(g.pos, io.SeekStart)
}
