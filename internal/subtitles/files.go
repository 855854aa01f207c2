package subtitles

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"smartsubs/internal/fileutil"
	"smartsubs/internal/logging"
)

// ConvertFile parses an SRT file and writes plain-text (.txt) and lyric
// (.lrc) siblings next to it, sharing the base name.
func ConvertFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read subtitle file: %w", err)
	}
	entries := Parse(string(data))

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if err := writeOutput(base+".txt", PlainText(entries)); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := writeOutput(base+".lrc", LyricFile(entries)); err != nil {
		return fmt.Errorf("write lyric file: %w", err)
	}
	return nil
}

func writeOutput(path, content string) error {
	if content != "" {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// ConvertResult contains the outcome of a directory conversion pass.
type ConvertResult struct {
	Converted []string
	Errors    []ConvertError
}

// ConvertError pairs a subtitle path with its conversion error.
type ConvertError struct {
	Path string
	Err  error
}

// ConvertDir converts every .srt file in dir. A failed file is logged
// as a warning and the remaining files are still processed; conversion
// failures never abort the pass.
func ConvertDir(dir string, logger *slog.Logger) ConvertResult {
	result := ConvertResult{}

	paths, err := fileutil.FilesWithExt(dir, ".srt")
	if err != nil {
		result.Errors = append(result.Errors, ConvertError{Path: dir, Err: err})
		return result
	}

	for _, path := range paths {
		if err := ConvertFile(path); err != nil {
			result.Errors = append(result.Errors, ConvertError{Path: path, Err: err})
			if logger != nil {
				logger.Warn("subtitle conversion failed",
					logging.String("path", path),
					logging.Error(err),
				)
			}
			continue
		}
		result.Converted = append(result.Converted, path)
		if logger != nil {
			logger.Info("converted subtitle file", logging.String("path", path))
		}
	}
	return result
}
