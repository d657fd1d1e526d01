//go:build windows

package binfile

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync flushes file data and metadata with FlushFileBuffers.
func fdatasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
