package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	if err := c.validateDownloader(); err != nil {
		return err
	}
	if err := c.validateTranscriber(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.StagingDir == "" {
		return errors.New("paths.staging_dir must be set")
	}
	if c.Paths.OutputDir == c.Paths.StagingDir {
		return errors.New("paths.output_dir and paths.staging_dir must differ")
	}
	if c.Paths.StagingStaleHours < 0 {
		return errors.New("paths.staging_stale_hours must not be negative")
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	if c.Subtitles.Languages == "" {
		return errors.New("subtitles.languages must list at least one pattern")
	}
	return nil
}

func (c *Config) validateDownloader() error {
	if c.Downloader.Binary == "" {
		return errors.New("downloader.binary must be set")
	}
	return nil
}

func (c *Config) validateTranscriber() error {
	if c.Transcriber.Binary == "" {
		return errors.New("transcriber.binary must be set")
	}
	if c.Transcriber.Model == "" {
		return errors.New("transcriber.model must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
