package config

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bined/internal/logger"
)

// maxDumpWidth keeps a dump line within a sensible terminal width.
const maxDumpWidth = 256

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if c.Editor.CopyBufferSize < 1 {
		errs = append(errs, "editor.copy_buffer_size must be >= 1")
	}
	if c.Editor.MaxReadBytes < 0 {
		errs = append(errs, "editor.max_read_bytes must be >= 0 (0 disables the limit)")
	}

	if c.Output.DumpWidth < 1 || c.Output.DumpWidth > maxDumpWidth {
		errs = append(errs, fmt.Sprintf("output.dump_width must be between 1 and %d", maxDumpWidth))
	}
	if c.Editor.MaxReadBytes > 0 && c.Editor.MaxReadBytes < int64(c.Output.DumpWidth) {
		errs = append(errs, "editor.max_read_bytes must be 0 or at least output.dump_width")
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, "log.level must be one of debug, info, warn, error")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
