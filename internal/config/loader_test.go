package config

import (
	"errors"
	"os"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const defaultPath = "/home/user/.config/bined/config.json"

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithFS(&MockFileSystem{HomeDir: "/home/user", Files: map[string][]byte{}})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_NoHomeDir_ReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithFS(&MockFileSystem{HomeDirErr: errors.New("no home")})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Output.DumpWidth)
}

func TestLoad_PartialOverride(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			defaultPath: []byte(`{"output": {"dump_width": 8, "color": false}, "log": {"enabled": true}}`),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Output.DumpWidth)
	assert.False(t, cfg.Output.Color)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 64*1024, cfg.Editor.CopyBufferSize)
}

func TestLoad_ExplicitZeroOverridesDefault(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{"editor": {"max_read_bytes": 0}}`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Editor.MaxReadBytes)
}

func TestLoad_MalformedJSON(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{"output": `)},
	}

	_, err := NewLoaderWithFS(fs).Load()
	require.Error(t, err)
}

func TestLoad_PermissionError(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user", ReadFileErr: os.ErrPermission}

	_, err := NewLoaderWithFS(fs).Load()
	require.ErrorIs(t, err, os.ErrPermission)
}

func TestLoad_InvalidValues(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			defaultPath: []byte(`{"output": {"dump_width": 0}, "editor": {"copy_buffer_size": -1}, "log": {"level": "loud"}}`),
		},
	}

	_, err := NewLoaderWithFS(fs).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.dump_width")
	assert.Contains(t, err.Error(), "editor.copy_buffer_size")
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoadFile_MustExist(t *testing.T) {
	loader := NewLoaderWithFS(&MockFileSystem{Files: map[string][]byte{}})

	_, err := loader.LoadFile("/etc/bined.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	loader := NewLoaderWithFS(&MockFileSystem{
		Files: map[string][]byte{"/etc/bined.json": []byte(`{"editor": {"scratch_dir": "/var/tmp"}}`)},
	})

	cfg, err := loader.LoadFile("/etc/bined.json")
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp", cfg.Editor.ScratchDir)
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Conversions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.ScratchDir = "/scratch"
	cfg.Editor.FullSync = true
	cfg.Log.Enabled = true
	cfg.Log.Level = "debug"

	fo := cfg.FileOptions()
	assert.Equal(t, 64*1024, fo.CopyBufferSize)
	assert.Equal(t, int64(64*1024*1024), fo.MaxRead)
	assert.Equal(t, "/scratch", fo.ScratchDir)
	assert.True(t, fo.FullSync)

	lo := cfg.LoggerOptions()
	assert.True(t, lo.Enabled)
	assert.Equal(t, slog.LevelDebug, lo.Level)
}

func TestValidate_MaxReadBelowDumpWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.DumpWidth = 16
	cfg.Editor.MaxReadBytes = 8

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor.max_read_bytes must be 0 or at least output.dump_width")

	cfg.Editor.MaxReadBytes = 16
	require.NoError(t, cfg.Validate())
	cfg.Editor.MaxReadBytes = 0
	require.NoError(t, cfg.Validate())
}
