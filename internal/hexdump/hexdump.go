// Package hexdump renders bytes as offset / hex / glyph lines:
//
//	0x00000000	48 65 6C 6C 6F 0A                               	Hello◙
//
// Every byte has a visible glyph. Control bytes use the code page 437 symbol
// set rather than being replaced with dots, so the text column keeps one
// character per byte.
package hexdump

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// DefaultWidth is the number of bytes rendered per line.
const DefaultWidth = 16

// controlGlyphs are the CP437 symbols for 0x00-0x1F. 0x00 is rendered as '.'.
const controlGlyphs = ".☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼"

var glyphs = buildGlyphs()

func buildGlyphs() [256]rune {
	var t [256]rune
	i := 0
	for _, r := range controlGlyphs {
		t[i] = r
		i++
	}
	for b := 0x20; b < 0x7F; b++ {
		t[b] = rune(b)
	}
	t[0x7F] = '⌂'
	for b := 0x80; b <= 0xFF; b++ {
		t[b] = charmap.CodePage437.DecodeByte(byte(b))
	}
	// CP437 maps 0xFF to NBSP; dumps have always shown a plain space.
	t[0xFF] = ' '
	return t
}

// Glyph returns the character used for b in the text column.
func Glyph(b byte) rune { return glyphs[b] }

// Dump renders data with DefaultWidth bytes per line.
func Dump(data []byte) string {
	return DumpAt(data, 0, DefaultWidth)
}

// DumpWidth renders data with width bytes per line. A width below 1 means
// DefaultWidth.
func DumpWidth(data []byte, width int) string {
	return DumpAt(data, 0, width)
}

// DumpAt is DumpWidth with printed offsets starting at base, for dumping a
// slice that was read from the middle of a file.
func DumpAt(data []byte, base int64, width int) string {
	return strings.TrimRightFunc(Lines(data, base, width), unicode.IsSpace)
}

// Lines renders like DumpAt but keeps every line whole and ends each one with
// a newline. Concatenating Lines of consecutive pieces of a buffer, with the
// last piece rendered by DumpAt, gives the same text as one DumpAt call when
// every piece but the last is a multiple of width long.
func Lines(data []byte, base int64, width int) string {
	if width < 1 {
		width = DefaultWidth
	}

	var sb strings.Builder
	hexCol := make([]string, 0, width)
	for i := 0; i < len(data); i += width {
		chunk := data[i:min(i+width, len(data))]

		hexCol = hexCol[:0]
		for _, b := range chunk {
			hexCol = append(hexCol, fmt.Sprintf("%02X", b))
		}

		fmt.Fprintf(&sb, "0x%08X\t%-*s\t", base+int64(i), width*3, strings.Join(hexCol, " "))
		for _, b := range chunk {
			sb.WriteRune(glyphs[b])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
