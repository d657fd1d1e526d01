package binfile

import (
	"bytes"
	"errors"
	"io"

	"github.com/joshuapare/bined/internal/logger"
)

// Find searches forward from the cursor, inclusive, for the first occurrence
// of pattern. On a match the cursor moves to its first byte and Find returns
// that position with found set. Otherwise the cursor does not move.
//
// The file is scanned through one window of Options.CopyBufferSize bytes
// plus len(pattern)-1 bytes of overlap, so a match spanning two reads is
// still found.
func (bf *File) Find(pattern []byte) (pos int64, found bool, err error) {
	if err := bf.ready(); err != nil {
		return 0, false, err
	}
	if len(pattern) == 0 {
		return 0, false, invalidArg("search pattern is empty")
	}

	start, err := bf.Position()
	if err != nil {
		return 0, false, err
	}
	size, err := bf.Length()
	if err != nil {
		return 0, false, err
	}

	keep := len(pattern) - 1
	buf := make([]byte, keep+max(bf.opts.CopyBufferSize, len(pattern)))

	// buf[:have] holds the file bytes at [off, off+have)
	off, have := start, 0
	for off+int64(have) < size {
		n, err := bf.f.ReadAt(buf[have:], off+int64(have))
		if err != nil && !errors.Is(err, io.EOF) {
			return start, false, ioErr("find", err)
		}
		if n == 0 {
			break
		}
		have += n

		if i := bytes.Index(buf[:have], pattern); i >= 0 {
			at := off + int64(i)
			if _, err := bf.f.Seek(at, io.SeekStart); err != nil {
				return start, false, ioErr("find: seek", err)
			}
			logger.Debug("find", "path", bf.path, "from", start, "at", at)
			return at, true, nil
		}

		if have > keep {
			copy(buf, buf[have-keep:have])
			off += int64(have - keep)
			have = keep
		}
	}
	return start, false, nil
}
