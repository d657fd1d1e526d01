package scratch

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvisibleInDirectory(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch storage must not appear in a listing")

	if s.Name() != "" {
		_, err := os.Stat(s.Name())
		assert.True(t, os.IsNotExist(err), "former name %s still resolves", s.Name())
	}

	// The handle keeps working after the name is gone.
	n, err := s.Write([]byte("still usable"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestSpace_ReadWrite(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}

	s, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Write(data)
	require.NoError(t, err)
	require.NoError(t, s.Sync())

	pos, err := s.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), pos)

	size, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, pos, size)

	require.NoError(t, s.Rewind())
	read := make([]byte, len(data))
	_, err = io.ReadFull(s, read)
	require.NoError(t, err)
	assert.Equal(t, data, read)
}

func TestSpace_DefaultDir(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestSpace_CloseTwice(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Write([]byte{1})
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Seek(0, io.SeekStart)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Len()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Sync(), ErrClosed)
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New("/nonexistent/definitely/not/here")
	require.Error(t, err)
}
