//go:build !windows

package scratch

import (
	"fmt"
	"os"
)

// createAndUnlink creates a uniquely named file and removes its directory
// entry while keeping the handle open.
func createAndUnlink(dir string) (*os.File, string, error) {
	f, err := os.CreateTemp(dir, namePattern)
	if err != nil {
		return nil, "", err
	}
	name := f.Name()
	if err := os.Remove(name); err != nil {
		_ = f.Close()
		return nil, "", fmt.Errorf("unlink %s: %w", name, err)
	}
	return f, name, nil
}
