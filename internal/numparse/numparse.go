// Package numparse parses the numeric literals accepted by the command line:
// signed decimal and 0x-prefixed hexadecimal integers, offset literals that are
// either relative to the cursor or absolute, and hex byte strings.
package numparse

import (
	"encoding/hex"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	hexNumber     = regexp.MustCompile(`^\s*([-+]?)0[xX]([0-9A-Fa-f]+)\s*$`)
	decimalNumber = regexp.MustCompile(`^\s*([-+]?)([0-9]+)\s*$`)
)

// OffsetKind tells how an offset literal combines with the cursor.
type OffsetKind int

const (
	// Relative offsets are added to the current cursor.
	Relative OffsetKind = iota
	// Absolute offsets replace the cursor.
	Absolute
)

func (k OffsetKind) String() string {
	switch k {
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	default:
		return fmt.Sprintf("OffsetKind(%d)", int(k))
	}
}

// ParseOffsetKind is the inverse of OffsetKind.String.
func ParseOffsetKind(s string) (OffsetKind, error) {
	switch s {
	case "Relative":
		return Relative, nil
	case "Absolute":
		return Absolute, nil
	}
	return 0, fmt.Errorf("numparse: unknown offset kind %q", s)
}

// Offset is a parsed offset literal.
type Offset struct {
	Kind  OffsetKind
	Value int64
}

// Resolve returns the absolute position the offset designates for a cursor at
// pos. It fails with ErrOutOfRange when pos plus a relative value overflows.
func (o Offset) Resolve(pos int64) (int64, error) {
	if o.Kind != Relative {
		return o.Value, nil
	}
	if (o.Value > 0 && pos > math.MaxInt64-o.Value) ||
		(o.Value < 0 && pos < math.MinInt64-o.Value) {
		return 0, fmt.Errorf("%w: %d%+d", ErrOutOfRange, pos, o.Value)
	}
	return pos + o.Value, nil
}

// Parse parses a signed decimal or 0x-prefixed hexadecimal integer.
// Surrounding whitespace is ignored. The sign is applied to the parsed
// magnitude, so "-0x10" is -16.
func Parse(text string) (int64, error) {
	var sign, digits string
	base := 10
	if m := hexNumber.FindStringSubmatch(text); m != nil {
		sign, digits, base = m[1], m[2], 16
	} else if m := decimalNumber.FindStringSubmatch(text); m != nil {
		sign, digits = m[1], m[2]
	} else {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}

	mag, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}

	if sign == "-" {
		// -(1<<63) is representable, +(1<<63) is not
		if mag > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("%w: %q out of range", ErrNotANumber, text)
		}
		return -int64(mag-1) - 1, nil
	}
	if mag > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q out of range", ErrNotANumber, text)
	}
	return int64(mag), nil
}

// ClassifyOffset reports whether text is a relative offset (first non-space
// character is '+' or '-') or an absolute one. Blank text is Absolute.
func ClassifyOffset(text string) OffsetKind {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "-") {
		return Relative
	}
	return Absolute
}

// ParseOffset classifies and parses an offset literal.
func ParseOffset(text string) (Offset, error) {
	v, err := Parse(text)
	if err != nil {
		return Offset{}, err
	}
	return Offset{Kind: ClassifyOffset(text), Value: v}, nil
}

// ParseBytes decodes a hex byte string such as "DE AD be ef" or "0x0102".
// Whitespace anywhere in the string is ignored.
func ParseBytes(text string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if strings.HasPrefix(compact, "0x") || strings.HasPrefix(compact, "0X") {
		compact = compact[2:]
	}
	if compact == "" {
		return nil, fmt.Errorf("%w: empty", ErrNotBytes)
	}
	b, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotBytes, err)
	}
	return b, nil
}
