package binfile

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bined/internal/testutil"
)

func TestInsert_Middle(t *testing.T) {
	f := openTestFile(t, []byte("HelloWorld"))
	require.NoError(t, f.Seek(5))

	require.NoError(t, f.Insert([]byte(", ")))

	assertContent(t, f, "Hello, World")
	assert.Equal(t, int64(12), length(t, f))
	assert.Equal(t, int64(7), position(t, f))
}

func TestInsert_Start(t *testing.T) {
	f := openTestFile(t, []byte("body"))
	require.NoError(t, f.Insert([]byte("head:")))
	assertContent(t, f, "head:body")
	assert.Equal(t, int64(5), position(t, f))
}

func TestInsert_AtEndMatchesWrite(t *testing.T) {
	inserted := openTestFile(t, []byte("abc"))
	written := openTestFile(t, []byte("abc"))
	require.NoError(t, inserted.Seek(3))
	require.NoError(t, written.Seek(3))

	require.NoError(t, inserted.Insert([]byte("def")))
	require.NoError(t, written.Write([]byte("def")))

	a, err := os.ReadFile(inserted.Path())
	require.NoError(t, err)
	b, err := os.ReadFile(written.Path())
	require.NoError(t, err)
	assert.Equal(t, b, a)
	assert.Equal(t, position(t, written), position(t, inserted))
}

func TestInsert_Empty(t *testing.T) {
	f := openTestFile(t, []byte("abc"))
	require.NoError(t, f.Seek(1))
	require.NoError(t, f.Insert(nil))
	assertContent(t, f, "abc")
	assert.Equal(t, int64(1), position(t, f))
}

// The tail is much larger than the copy buffer, so it moves in many chunks.
func TestInsert_LargeTailSmallBuffer(t *testing.T) {
	content := testutil.Sequence(1<<20 + 13)
	rand.Shuffle(len(content), func(i, j int) { content[i], content[j] = content[j], content[i] })
	scratchDir := t.TempDir()

	opts := DefaultOptions()
	opts.CopyBufferSize = 7
	opts.ScratchDir = scratchDir
	f, err := OpenWithOptions(writeTestFile(t, content), false, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	const at = 1000
	x := []byte("inserted bytes")
	require.NoError(t, f.Seek(at))
	require.NoError(t, f.Insert(x))

	want := append(append(append([]byte{}, content[:at]...), x...), content[at:]...)
	require.True(t, bytes.Equal(want, testutil.ReadFile(t, f.Path())), "content mismatch after insert")
	assert.Equal(t, int64(len(content)+len(x)), length(t, f))
	assert.Equal(t, int64(at+len(x)), position(t, f))

	entries, err := os.ReadDir(scratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "insert left scratch files behind")
}

func TestInsert_Repeated(t *testing.T) {
	f := openTestFile(t, []byte("ad"))
	require.NoError(t, f.Seek(1))
	require.NoError(t, f.Insert([]byte("b")))
	require.NoError(t, f.Insert([]byte("c")))
	assertContent(t, f, "abcd")
	assert.Equal(t, int64(3), position(t, f))
}

func TestInsert_ScratchFailureLeavesFileIntact(t *testing.T) {
	opts := DefaultOptions()
	opts.ScratchDir = filepath.Join(t.TempDir(), "does-not-exist")
	f, err := OpenWithOptions(writeTestFile(t, []byte("0123456789")), false, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, f.Seek(4))
	err = f.Insert([]byte("XX"))
	require.ErrorIs(t, err, ErrIO)

	assertContent(t, f, "0123456789")
	assert.Equal(t, int64(4), position(t, f))
}
