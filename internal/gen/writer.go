package gen

import (
	"fmt"
	"os"
)

// File permission used when the target does not exist yet.
const filePerm = 0o644

// WriteFile writes content to path, keeping the permissions of an existing
// file.
func WriteFile(path string, content []byte) error {
	perm := os.FileMode(filePerm)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
