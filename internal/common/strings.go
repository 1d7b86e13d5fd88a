package common

import (
	"path/filepath"
	"strings"
)

// UnknownStr is the String() fallback for enum values outside their range.
const UnknownStr = "unknown"

// HasExt reports whether the file name ends with one of the given extensions.
// Comparison is case-insensitive; extensions include the leading dot.
func HasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}

	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}

	return false
}
