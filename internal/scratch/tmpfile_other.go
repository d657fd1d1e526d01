//go:build !linux && !windows

package scratch

import "os"

func openUnlinked(dir string) (*os.File, string, error) {
	return createAndUnlink(dir)
}
