// Package cache provides housekeeping for the application's persistent cache directory.
package cache

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spectra-cli/spectra/filesystem"
	"github.com/spectra-cli/spectra/log"
	"github.com/spectra-cli/spectra/where"
)

// TTL is the lifetime of a cache entry before garbage collection reclaims it.
const TTL = 7 * 24 * time.Hour

// CollectGarbage prunes expired entries from the cache directory.
// Intended to run as a background task at application startup.
func CollectGarbage() {
	dir := where.Cache()

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		log.Warnf("cache gc: %v", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if time.Since(entry.ModTime()) <= TTL {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := filesystem.API().Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("cache gc: remove %s: %v", path, err)
		}
	}
}
