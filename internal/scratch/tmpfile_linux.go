//go:build linux

package scratch

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/bined/internal/logger"
)

// openUnlinked prefers O_TMPFILE, which creates an inode with no name at all.
// Filesystems without support (and some overlay setups) fall back to
// create-then-unlink.
func openUnlinked(dir string) (*os.File, string, error) {
	fd, err := unix.Open(dir, unix.O_TMPFILE|unix.O_RDWR|unix.O_CLOEXEC, 0o600)
	if err == nil {
		return os.NewFile(uintptr(fd), filepath.Join(dir, "(unnamed)")), "", nil
	}
	logger.Debug("O_TMPFILE unavailable, unlinking instead", "dir", dir, "error", err)
	return createAndUnlink(dir)
}
