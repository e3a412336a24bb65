// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading tilde against the user's home directory and
// normalizes the result to an absolute path. Paths that cannot be resolved
// are returned unchanged so the playback engine reports the failure itself.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}
