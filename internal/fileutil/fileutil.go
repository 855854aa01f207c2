// Package fileutil provides the directory scanning helpers the
// acquisition pipeline relies on.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FirstFile returns the path of the first regular file in dir, in name
// order. It returns os.ErrNotExist when the directory holds no files.
func FirstFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		return filepath.Join(dir, entry.Name()), nil
	}
	return "", os.ErrNotExist
}

// FilesWithExt lists the regular files in dir carrying the given
// extension (case-insensitive), in name order. A missing directory
// yields an empty list, not an error.
func FilesWithExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	ext = strings.ToLower(ext)
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ext {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// IsEmpty reports whether dir contains no entries at all. A missing
// directory counts as empty.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return len(entries) == 0, nil
}
