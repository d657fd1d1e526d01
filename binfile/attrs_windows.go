//go:build windows

package binfile

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// inspect applies the open-time safety policy using the file attributes.
func inspect(path string) (readonly bool, err error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, invalidArg("path %q: %v", path, err)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, ioErr("get attributes", err)
	}

	if attrs&(windows.FILE_ATTRIBUTE_HIDDEN|windows.FILE_ATTRIBUTE_SYSTEM) != 0 {
		return false, fmt.Errorf(
			"%w: '%s' is marked as hidden or system; remove the attributes to edit it",
			ErrRefused,
			path,
		)
	}
	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return false, fmt.Errorf("%w: '%s' is a directory", ErrRefused, path)
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY != 0, nil
}
