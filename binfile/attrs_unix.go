//go:build !windows

package binfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// inspect applies the open-time safety policy. A dot-prefixed name counts as
// hidden and anything but a regular file counts as system. A file is readonly
// when it has no write permission bits or the process may not write it.
func inspect(path string) (readonly bool, err error) {
	st, err := os.Stat(path)
	if err != nil {
		return false, ioErr("stat", err)
	}

	if strings.HasPrefix(filepath.Base(path), ".") {
		return false, fmt.Errorf("%w: '%s' is hidden; rename it to edit", ErrRefused, path)
	}
	if !st.Mode().IsRegular() {
		return false, fmt.Errorf("%w: '%s' is not a regular file (%s)", ErrRefused, path, st.Mode().Type())
	}

	if st.Mode().Perm()&0o222 == 0 {
		return true, nil
	}
	return unix.Access(path, unix.W_OK) != nil, nil
}
