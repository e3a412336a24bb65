package log

import (
	"path/filepath"
	"time"

	"github.com/tonearm-cli/tonearm/filesystem"
	"github.com/tonearm-cli/tonearm/where"
)

// retention bounds how long per-day log files are kept on disk.
const retention = 30 * 24 * time.Hour

// CollectGarbage prunes log files that have exceeded the retention window.
func CollectGarbage() {
	dir := where.Logs()

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if time.Since(entry.ModTime()) > retention {
			_ = filesystem.API().Remove(filepath.Join(dir, entry.Name()))
		}
	}
}
