//go:build windows

package scratch

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/windows"
)

const maxNameAttempts = 100

// openUnlinked creates the file with delete-on-close semantics and share-delete
// access, then deletes the name right away. On NTFS with POSIX delete
// semantics the entry disappears immediately; elsewhere it is delete-pending
// and cannot be opened by anyone until the handle closes.
func openUnlinked(dir string) (*os.File, string, error) {
	prefix, suffix, _ := strings.Cut(namePattern, "*")

	for range maxNameAttempts {
		name := filepath.Join(dir, prefix+strconv.FormatUint(rand.Uint64(), 36)+suffix)
		p, err := windows.UTF16PtrFromString(name)
		if err != nil {
			return nil, "", err
		}

		h, err := windows.CreateFile(
			p,
			windows.GENERIC_READ|windows.GENERIC_WRITE,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
			nil,
			windows.CREATE_NEW,
			windows.FILE_ATTRIBUTE_TEMPORARY|windows.FILE_FLAG_DELETE_ON_CLOSE,
			0,
		)
		if errors.Is(err, windows.ERROR_FILE_EXISTS) {
			continue
		}
		if err != nil {
			return nil, "", err
		}

		if err := windows.DeleteFile(p); err != nil {
			_ = windows.CloseHandle(h)
			return nil, "", err
		}
		return os.NewFile(uintptr(h), name), name, nil
	}
	return nil, "", errors.New("exhausted scratch file names")
}
