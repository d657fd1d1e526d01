package config

import (
	"github.com/joshuapare/bined/binfile"
	"github.com/joshuapare/bined/internal/logger"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Editor EditorConfig `json:"editor"`
	Output OutputConfig `json:"output"`
	Log    LogConfig    `json:"log"`
}

type EditorConfig struct {
	CopyBufferSize int    `json:"copy_buffer_size"` // Default: 64 * 1024
	MaxReadBytes   int64  `json:"max_read_bytes"`   // Default: 64 * 1024 * 1024 (64MB)
	ScratchDir     string `json:"scratch_dir"`      // Default: "" (os.TempDir())
	FullSync       bool   `json:"full_sync"`        // Default: false
}

type OutputConfig struct {
	DumpWidth int  `json:"dump_width"` // Default: 16
	Color     bool `json:"color"`      // Default: true
}

type LogConfig struct {
	Enabled bool   `json:"enabled"` // Default: false
	Dir     string `json:"dir"`     // Default: "" (~/.bined/logs)
	Level   string `json:"level"`   // Default: "info"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			CopyBufferSize: 64 * 1024,
			MaxReadBytes:   64 * 1024 * 1024,
		},
		Output: OutputConfig{
			DumpWidth: 16,
			Color:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// FileOptions returns the binfile options described by the editor section.
func (c *Config) FileOptions() binfile.Options {
	return binfile.Options{
		CopyBufferSize: c.Editor.CopyBufferSize,
		MaxRead:        c.Editor.MaxReadBytes,
		ScratchDir:     c.Editor.ScratchDir,
		FullSync:       c.Editor.FullSync,
	}
}

// LoggerOptions returns the logger options described by the log section.
// An unparseable level falls back to info; Validate reports it.
func (c *Config) LoggerOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Log.Level)
	return logger.Options{
		Enabled: c.Log.Enabled,
		LogDir:  c.Log.Dir,
		Level:   level,
	}
}
