package binfile

import (
	"fmt"
	"io"

	"github.com/joshuapare/bined/internal/logger"
	"github.com/joshuapare/bined/internal/posguard"
	"github.com/joshuapare/bined/internal/scratch"
)

// Insert writes p at the cursor and moves every byte that was at or after the
// cursor back by len(p). The cursor ends just after the inserted bytes.
//
// At the end of the file this is a plain Write. Otherwise the tail is parked
// in an unnamed scratch space, so memory use stays at one copy buffer. See
// the package documentation for the failure semantics.
func (bf *File) Insert(p []byte) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if err := bf.ensureWritable(); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}

	pos, err := bf.Position()
	if err != nil {
		return err
	}
	size, err := bf.Length()
	if err != nil {
		return err
	}
	if pos >= size {
		return bf.write(p)
	}

	tail := size - pos
	logger.Debug("insert", "path", bf.path, "at", pos, "bytes", len(p), "tail", tail)

	space, err := scratch.New(bf.opts.ScratchDir)
	if err != nil {
		return ioErr("insert", err)
	}
	defer space.Close()

	buf := make([]byte, min(int64(bf.opts.CopyBufferSize), tail))

	if err := bf.parkTail(space, tail, buf); err != nil {
		return err
	}

	if err := bf.write(p); err != nil {
		return err
	}
	if err := copyExactly(bf.f, space, tail, buf); err != nil {
		return ioErr("insert: restore tail", err)
	}

	if _, err := bf.f.Seek(pos+int64(len(p)), io.SeekStart); err != nil {
		return ioErr("insert: reposition", err)
	}
	return nil
}

// parkTail copies tail bytes from the cursor into space and rewinds it. The
// file cursor is back at the insertion point when it returns, on every path.
func (bf *File) parkTail(space *scratch.Space, tail int64, buf []byte) error {
	g, err := posguard.New(bf.f)
	if err != nil {
		return ioErr("insert", err)
	}
	defer g.Release()

	if err := copyExactly(space, bf.f, tail, buf); err != nil {
		return ioErr("insert: park tail", err)
	}
	if err := space.Sync(); err != nil {
		return ioErr("insert: flush scratch", err)
	}
	if err := space.Rewind(); err != nil {
		return ioErr("insert: rewind scratch", err)
	}

	g.Release()
	return nil
}

// copyExactly moves n bytes from src to dst through buf.
func copyExactly(dst io.Writer, src io.Reader, n int64, buf []byte) error {
	copied, err := io.CopyBuffer(dst, io.LimitReader(src, n), buf)
	if err != nil {
		return err
	}
	if copied != n {
		return fmt.Errorf("copied %d of %d bytes: %w", copied, n, io.ErrUnexpectedEOF)
	}
	return nil
}
