// Package scratch provides anonymous temporary storage used as an overflow
// buffer. A Space is backed by a real file that has no directory entry from
// the moment it exists: no other process can list, open or collide with it,
// and the kernel reclaims it when the handle is closed, even after a crash.
//
// On Linux the file is created with O_TMPFILE and never has a name. Other
// Unix systems create a uniquely named file and unlink it before returning.
// Windows opens it with FILE_FLAG_DELETE_ON_CLOSE and deletes the name
// immediately.
package scratch

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/bined/internal/logger"
)

const namePattern = "bined-scratch-*"

// Space is an unnamed, unbounded byte store. It is not safe for concurrent use.
type Space struct {
	f      *os.File
	name   string
	closed bool
}

// New creates a Space in dir, or in os.TempDir() when dir is empty.
func New(dir string) (*Space, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	f, name, err := openUnlinked(dir)
	if err != nil {
		return nil, fmt.Errorf("scratch: create in %s: %w", dir, err)
	}
	logger.Debug("scratch created", "dir", dir, "name", name)
	return &Space{f: f, name: name}, nil
}

// Name returns the path the backing file had before it was unlinked, or ""
// when it never had one.
func (s *Space) Name() string { return s.name }

func (s *Space) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.f.Read(p)
}

func (s *Space) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.f.Write(p)
}

func (s *Space) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.f.Seek(offset, whence)
}

// Rewind moves the cursor back to the start of the space.
func (s *Space) Rewind() error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// Len returns the number of bytes stored.
func (s *Space) Len() (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	st, err := s.f.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

// Sync flushes buffered writes to the backing storage.
func (s *Space) Sync() error {
	if s.closed {
		return ErrClosed
	}
	return s.f.Sync()
}

// Close releases the storage. Calling it more than once is a no-op.
func (s *Space) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	logger.Debug("scratch released", "name", s.name)
	return s.f.Close()
}
