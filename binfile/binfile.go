package binfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/bined/internal/logger"
	"github.com/joshuapare/bined/internal/numparse"
	"github.com/joshuapare/bined/internal/posguard"
)

// File is an open binary file with a single read/write cursor.
type File struct {
	f        *os.File
	path     string
	readonly bool
	closed   bool
	opts     Options
}

// Open opens an existing file with DefaultOptions.
func Open(path string) (*File, error) {
	return OpenWithOptions(path, false, DefaultOptions())
}

// Create creates a new, empty file with DefaultOptions. It fails if anything
// already exists at path.
func Create(path string) (*File, error) {
	return OpenWithOptions(path, true, DefaultOptions())
}

// OpenWithOptions opens path, or creates it when create is set. Creation never
// overwrites: an existing path is an error. Opening an existing hidden or
// system file fails with ErrRefused. The cursor starts at offset 0.
func OpenWithOptions(path string, create bool, opts Options) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, invalidArg("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, invalidArg("path %q: %v", path, err)
	}

	bf := &File{path: abs, opts: opts.withDefaults()}

	if create {
		f, err := os.OpenFile(abs, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if err != nil {
			return nil, ioErr("create", err)
		}
		bf.f = f
		logger.Debug("file created", "path", abs)
		return bf, nil
	}

	readonly, err := inspect(abs)
	if err != nil {
		return nil, err
	}

	flag := os.O_RDWR
	if readonly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(abs, flag, 0)
	if err != nil {
		return nil, ioErr("open", err)
	}
	bf.f = f
	bf.readonly = readonly
	logger.Debug("file opened", "path", abs, "readonly", readonly)
	return bf, nil
}

// Path returns the absolute path the file was opened with.
func (bf *File) Path() string { return bf.path }

// Readonly reports whether mutating operations are refused.
func (bf *File) Readonly() bool { return bf.readonly }

// Closed reports whether Close has been called.
func (bf *File) Closed() bool { return bf == nil || bf.closed }

// Close releases the file handle. Calling it more than once is safe.
func (bf *File) Close() error {
	if bf == nil || bf.closed {
		return nil
	}
	bf.closed = true
	logger.Debug("file closed", "path", bf.path)
	if err := bf.f.Close(); err != nil {
		return ioErr("close", err)
	}
	return nil
}

// Position returns the cursor.
func (bf *File) Position() (int64, error) {
	if err := bf.ready(); err != nil {
		return 0, err
	}
	pos, err := bf.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, ioErr("tell", err)
	}
	return pos, nil
}

// Length returns the current size of the file.
func (bf *File) Length() (int64, error) {
	if err := bf.ready(); err != nil {
		return 0, err
	}
	st, err := bf.f.Stat()
	if err != nil {
		return 0, ioErr("stat", err)
	}
	return st.Size(), nil
}

// Read returns exactly count bytes from the cursor and advances it by count.
// A count of 0 returns an empty slice without touching the file. If fewer
// than count bytes remain, Read fails with a *ShortReadError and the cursor
// does not move.
func (bf *File) Read(count int64) ([]byte, error) {
	if err := bf.ready(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, invalidArg("read count %d is negative", count)
	}
	if count == 0 {
		return []byte{}, nil
	}
	if bf.opts.MaxRead > 0 && count > bf.opts.MaxRead {
		return nil, invalidArg("read count %d exceeds limit of %d bytes", count, bf.opts.MaxRead)
	}

	pos, err := bf.Position()
	if err != nil {
		return nil, err
	}
	size, err := bf.Length()
	if err != nil {
		return nil, err
	}
	if remaining := size - pos; count > remaining {
		return nil, &ShortReadError{Want: count, Got: max(remaining, 0)}
	}

	g, err := posguard.New(bf.f)
	if err != nil {
		return nil, ioErr("read", err)
	}
	defer g.Release()

	buf := make([]byte, count)
	n, err := io.ReadFull(bf.f, buf)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			// the file shrank underneath us
			return nil, &ShortReadError{Want: count, Got: int64(n)}
		}
		return nil, ioErr("read", err)
	}

	g.SetRestore(false)
	return buf, nil
}

// Write writes p at the cursor, overwriting existing bytes and extending the
// file when it reaches the end. The cursor advances by len(p).
func (bf *File) Write(p []byte) error {
	return bf.WriteRange(p, 0, len(p))
}

// WriteRange writes buf[off:off+count] at the cursor.
func (bf *File) WriteRange(buf []byte, off, count int) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if off < 0 || count < 0 || off > len(buf) || count > len(buf)-off {
		return invalidArg("range [%d:+%d] outside buffer of %d bytes", off, count, len(buf))
	}
	if err := bf.ensureWritable(); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return bf.write(buf[off : off+count])
}

// Seek moves the cursor to the absolute position pos, which must be within
// [0, Length()].
func (bf *File) Seek(pos int64) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if pos < 0 {
		return invalidArg("position %d is negative", pos)
	}
	size, err := bf.Length()
	if err != nil {
		return err
	}
	if pos > size {
		return invalidArg("position %d is past the end of the file (%d bytes)", pos, size)
	}
	if _, err := bf.f.Seek(pos, io.SeekStart); err != nil {
		return ioErr("seek", err)
	}
	return nil
}

// SeekOffset resolves off against the cursor and seeks there. It returns the
// new position.
func (bf *File) SeekOffset(off numparse.Offset) (int64, error) {
	pos, err := bf.Position()
	if err != nil {
		return 0, err
	}
	target, err := off.Resolve(pos)
	if err != nil {
		return pos, invalidArg("%v", err)
	}
	if err := bf.Seek(target); err != nil {
		return pos, err
	}
	return target, nil
}

// Truncate sets the file length to size. Truncating below the cursor is
// refused; seek backwards first to cut earlier content.
func (bf *File) Truncate(size int64) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if size < 0 {
		return invalidArg("size %d is negative", size)
	}
	pos, err := bf.Position()
	if err != nil {
		return err
	}
	if size < pos {
		return invalidArg("size %d is below the cursor at %d", size, pos)
	}
	if err := bf.ensureWritable(); err != nil {
		return err
	}
	if err := bf.f.Truncate(size); err != nil {
		return ioErr("truncate", err)
	}
	return nil
}

// TruncateAtCursor cuts the file at the cursor.
func (bf *File) TruncateAtCursor() error {
	pos, err := bf.Position()
	if err != nil {
		return err
	}
	return bf.Truncate(pos)
}

// Sync commits written data to stable storage.
func (bf *File) Sync() error {
	if err := bf.ready(); err != nil {
		return err
	}
	if err := fdatasync(bf.f, bf.opts.FullSync); err != nil {
		return ioErr("sync", err)
	}
	return nil
}

// AppendFile copies the content of the file at path to the end of this file
// and leaves the cursor at the new end. It returns the number of bytes
// appended. Only the bytes present when the copy starts are appended, so a
// file can be appended to itself.
func (bf *File) AppendFile(path string) (int64, error) {
	if err := bf.ready(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(path) == "" {
		return 0, invalidArg("path cannot be empty")
	}
	if err := bf.ensureWritable(); err != nil {
		return 0, err
	}

	src, err := os.Open(path)
	if err != nil {
		return 0, ioErr("append: open", err)
	}
	defer src.Close()
	st, err := src.Stat()
	if err != nil {
		return 0, ioErr("append: stat", err)
	}
	if !st.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s is not a regular file", ErrRefused, path)
	}

	if _, err := bf.f.Seek(0, io.SeekEnd); err != nil {
		return 0, ioErr("append: seek", err)
	}
	buf := make([]byte, min(int64(bf.opts.CopyBufferSize), max(st.Size(), 1)))
	n, err := io.CopyBuffer(bf.f, io.LimitReader(src, st.Size()), buf)
	if err != nil {
		return n, ioErr("append", err)
	}
	logger.Debug("file appended", "path", bf.path, "source", path, "bytes", n)
	return n, nil
}

// Delete closes the file and removes it from disk. Readonly files are
// refused and stay open.
func (bf *File) Delete() error {
	if err := bf.ready(); err != nil {
		return err
	}
	if err := bf.ensureWritable(); err != nil {
		return err
	}
	if err := bf.Close(); err != nil {
		return err
	}
	if err := os.Remove(bf.path); err != nil {
		return ioErr("delete", err)
	}
	logger.Debug("file deleted", "path", bf.path)
	return nil
}

func (bf *File) write(p []byte) error {
	if _, err := bf.f.Write(p); err != nil {
		return ioErr("write", err)
	}
	return nil
}

func (bf *File) ready() error {
	if bf == nil || bf.closed {
		return ErrNotReady
	}
	return nil
}

func (bf *File) ensureWritable() error {
	if bf.readonly {
		return fmt.Errorf("%w: file is currently readonly", ErrRefused)
	}
	return nil
}
