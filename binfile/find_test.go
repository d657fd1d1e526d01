package binfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bined/internal/testutil"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		from      int64
		pattern   string
		bufSize   int
		wantPos   int64
		wantFound bool
	}{
		{"at cursor", "abcdef", 2, "cd", 0, 2, true},
		{"later", "abcabc", 1, "abc", 0, 3, true},
		{"missing", "abcdef", 0, "xyz", 0, 0, false},
		{"behind cursor is not searched", "abcdef", 3, "ab", 0, 3, false},
		{"spans small windows", "0123456789ABCDEF", 0, "6789AB", 4, 6, true},
		{"single byte windows", "zzzzzzzq", 0, "q", 1, 7, true},
		{"pattern longer than rest", "abc", 1, "bcd", 0, 1, false},
		{"at cursor on empty tail", "abc", 3, "a", 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.bufSize > 0 {
				opts.CopyBufferSize = tt.bufSize
			}
			f, err := OpenWithOptions(writeTestFile(t, []byte(tt.content)), false, opts)
			require.NoError(t, err)
			t.Cleanup(func() { _ = f.Close() })
			require.NoError(t, f.Seek(tt.from))

			pos, found, err := f.Find([]byte(tt.pattern))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantPos, position(t, f))
		})
	}
}

func TestFind_LargeFileSmallWindow(t *testing.T) {
	content := testutil.Sequence(10000)
	opts := DefaultOptions()
	opts.CopyBufferSize = 7
	f, err := OpenWithOptions(writeTestFile(t, content), false, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.Seek(300))

	// bytes 0xFE 0xFF 0x00 0x01 first occur after 300 at 510
	pos, found, err := f.Find([]byte{0xFE, 0xFF, 0x00, 0x01})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(510), pos)
}

func TestFind_EmptyPattern(t *testing.T) {
	f := openTestFile(t, []byte("abc"))
	_, _, err := f.Find(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
