// Package staging manages per-run audio workspaces under the staging
// root and reaps the ones abandoned by earlier runs.
package staging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smartsubs/internal/logging"
)

// Workspace is one run's audio staging directory.
type Workspace struct {
	Path string
}

// NewWorkspace creates root/<runID> and returns it.
func NewWorkspace(root, runID string) (Workspace, error) {
	path := filepath.Join(root, runID)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Workspace{}, fmt.Errorf("create staging workspace: %w", err)
	}
	return Workspace{Path: path}, nil
}

// CleanStaleResult contains the outcome of a stale workspace cleanup.
type CleanStaleResult struct {
	Removed []string
	Errors  []CleanupError
}

// CleanupError pairs a directory path with its cleanup error.
type CleanupError struct {
	Path string
	Err  error
}

// CleanStale removes workspaces under stagingRoot older than maxAge.
// Failures are reported per directory and never abort the sweep.
func CleanStale(stagingRoot string, maxAge time.Duration, logger *slog.Logger) CleanStaleResult {
	result := CleanStaleResult{}

	stagingRoot = strings.TrimSpace(stagingRoot)
	if stagingRoot == "" || maxAge <= 0 {
		return result
	}

	entries, err := os.ReadDir(stagingRoot)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Errors = append(result.Errors, CleanupError{Path: stagingRoot, Err: err})
		}
		return result
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(stagingRoot, entry.Name())
		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: dirPath, Err: err})
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(dirPath); err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: dirPath, Err: err})
			if logger != nil {
				logger.Warn("failed to remove stale staging workspace",
					logging.String("path", dirPath),
					logging.Error(err),
				)
			}
			continue
		}
		result.Removed = append(result.Removed, dirPath)
		if logger != nil {
			logger.Info("removed stale staging workspace",
				logging.String("path", dirPath),
				logging.Duration("age", time.Since(info.ModTime())),
			)
		}
	}
	return result
}
