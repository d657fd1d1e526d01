//go:build !windows

package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUnlink(t *testing.T) {
	dir := t.TempDir()
	f, name, err := createAndUnlink(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.NotEmpty(t, name)
	assert.NoFileExists(t, name)
}
