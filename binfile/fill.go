package binfile

import (
	"bytes"
	"crypto/rand"
)

// Repeat applies p count times in a row at the cursor, as count calls to
// Apply would. Writes go out in blocks of about Options.CopyBufferSize bytes.
// If a block fails, the blocks before it stay written.
func (bf *File) Repeat(mode ByteMode, p []byte, count int64) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if count < 0 {
		return invalidArg("repeat count %d is negative", count)
	}
	if len(p) == 0 || count == 0 {
		return bf.Apply(mode, nil)
	}

	per := int64(max(1, bf.opts.CopyBufferSize/len(p)))
	block := bytes.Repeat(p, int(min(per, count)))
	for count > 0 {
		k := min(per, count)
		if err := bf.Apply(mode, block[:k*int64(len(p))]); err != nil {
			return err
		}
		count -= k
	}
	return nil
}

// WriteRandom overwrites count bytes at the cursor with cryptographically
// random data, extending the file as needed.
func (bf *File) WriteRandom(count int64) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if count < 0 {
		return invalidArg("random count %d is negative", count)
	}
	if err := bf.ensureWritable(); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	buf := make([]byte, min(int64(bf.opts.CopyBufferSize), count))
	for count > 0 {
		chunk := buf[:min(int64(len(buf)), count)]
		if _, err := rand.Read(chunk); err != nil {
			return ioErr("random", err)
		}
		if err := bf.write(chunk); err != nil {
			return err
		}
		count -= int64(len(chunk))
	}
	return nil
}
