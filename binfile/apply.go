package binfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/bined/internal/posguard"
)

// ByteMode selects how Apply combines new bytes with the existing ones.
type ByteMode int

const (
	// Overwrite replaces existing bytes.
	Overwrite ByteMode = iota
	// Add adds each value to the existing byte, wrapping at 256.
	Add
	// Subtract subtracts each value from the existing byte, wrapping at 0.
	Subtract
	// And combines with bitwise AND.
	And
	// Or combines with bitwise OR.
	Or
	// Xor combines with bitwise XOR. There is no NOT mode: NOT is XOR 0xFF.
	Xor
)

var byteModeNames = [...]string{
	Overwrite: "Overwrite",
	Add:       "Add",
	Subtract:  "Subtract",
	And:       "And",
	Or:        "Or",
	Xor:       "Xor",
}

func (m ByteMode) String() string {
	if m >= 0 && int(m) < len(byteModeNames) {
		return byteModeNames[m]
	}
	return fmt.Sprintf("ByteMode(%d)", int(m))
}

// ParseByteMode is the inverse of ByteMode.String.
func ParseByteMode(s string) (ByteMode, error) {
	for i, name := range byteModeNames {
		if name == s {
			return ByteMode(i), nil
		}
	}
	return 0, invalidArg("unknown byte mode %q", s)
}

func (m ByteMode) combine(cur, v byte) byte {
	switch m {
	case Add:
		return cur + v
	case Subtract:
		return cur - v
	case And:
		return cur & v
	case Or:
		return cur | v
	case Xor:
		return cur ^ v
	default:
		return v
	}
}

// Apply combines p with the bytes at the cursor according to mode and writes
// the result back in place. Bytes past the end of the file count as zero, so
// Apply can extend the file like Write does. The cursor advances by len(p).
func (bf *File) Apply(mode ByteMode, p []byte) error {
	if err := bf.ready(); err != nil {
		return err
	}
	if mode < Overwrite || mode > Xor {
		return invalidArg("unknown byte mode %d", int(mode))
	}
	if err := bf.ensureWritable(); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	if mode == Overwrite {
		return bf.write(p)
	}

	g, err := posguard.New(bf.f)
	if err != nil {
		return ioErr("apply", err)
	}
	defer g.Release()

	cur := make([]byte, len(p))
	if _, err := io.ReadFull(bf.f, cur); err != nil &&
		!errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return ioErr("apply: read", err)
	}
	for i, v := range p {
		cur[i] = mode.combine(cur[i], v)
	}

	g.Release()
	return bf.write(cur)
}
