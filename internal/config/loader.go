package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "bined"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// osFileSystem implements FileSystem using the real OS
type osFileSystem struct{}

func (osFileSystem) UserHomeDir() (string, error) { return os.UserHomeDir() }

func (osFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: osFileSystem{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// DefaultPath returns ~/.config/bined/config.json, or "" when the home
// directory is unknown.
func (l *Loader) DefaultPath() string {
	home, err := l.fs.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", ConfigDir, ConfigFile)
}

// Load reads the config at DefaultPath and merges it with defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*Config, error) {
	path := l.DefaultPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return l.load(path, true)
}

// LoadFile reads the config at path. Unlike Load, the file must exist.
func (l *Loader) LoadFile(path string) (*Config, error) {
	return l.load(path, false)
}

func (l *Loader) load(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Present keys overwrite defaults (even if zero); missing keys keep them.
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
