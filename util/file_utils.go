package util

import (
	"os"
	"path/filepath"
	"time"

	"vidfetch/config"

	"go.uber.org/zap"
)

// EnsureDownloadsDir creates the downloads directory if missing.
func EnsureDownloadsDir() error {
	return os.MkdirAll(config.Env.DownloadsDirectory, 0o755)
}

// CleanupOldFiles removes entries older than maxAge. Stale files are
// the leftovers of requests that failed before their cleanup ran.
func CleanupOldFiles(dir string, maxAge time.Duration) {
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == dir {
			return nil
		}

		if time.Since(info.ModTime()) > maxAge {
			if info.IsDir() {
				zap.S().Debugf("removing old directory: %s", path)
				os.RemoveAll(path)
			} else {
				zap.S().Debugf("removing old file: %s", path)
				os.Remove(path)
			}
		}

		return nil
	})
}

// StartDownloadsCleanup runs the stale-file janitor on a fixed
// interval for the lifetime of the process.
func StartDownloadsCleanup() {
	ticker := time.NewTicker(config.Env.CleanupInterval)
	go func() {
		for {
			CleanupOldFiles(config.Env.DownloadsDirectory, config.Env.CleanupMaxAge)
			<-ticker.C
		}
	}()
}
