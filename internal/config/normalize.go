package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSubtitles()
	if err := c.normalizeDownloader(); err != nil {
		return err
	}
	c.normalizeTranscriber()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	if c.Paths.StagingStaleHours == 0 {
		c.Paths.StagingStaleHours = defaultStagingStaleHours
	}
	return nil
}

func (c *Config) normalizeSubtitles() {
	c.Subtitles.Languages = strings.TrimSpace(c.Subtitles.Languages)
	if c.Subtitles.Languages == "" {
		if value, ok := os.LookupEnv("LANGS"); ok && strings.TrimSpace(value) != "" {
			c.Subtitles.Languages = strings.TrimSpace(value)
		} else {
			c.Subtitles.Languages = defaultLanguages
		}
	}
}

func (c *Config) normalizeDownloader() error {
	c.Downloader.Binary = strings.TrimSpace(c.Downloader.Binary)
	if c.Downloader.Binary == "" {
		c.Downloader.Binary = defaultDownloaderBinary
	}
	c.Downloader.UserAgent = strings.TrimSpace(c.Downloader.UserAgent)
	if c.Downloader.UserAgent == "" {
		c.Downloader.UserAgent = strings.TrimSpace(os.Getenv("UA"))
	}
	c.Downloader.CookiePath = strings.TrimSpace(c.Downloader.CookiePath)
	if c.Downloader.CookiePath == "" {
		c.Downloader.CookiePath = defaultCookiePath
	}
	expanded, err := expandPath(c.Downloader.CookiePath)
	if err != nil {
		return fmt.Errorf("downloader.cookie_path: %w", err)
	}
	c.Downloader.CookiePath = expanded
	return nil
}

func (c *Config) normalizeTranscriber() {
	c.Transcriber.Binary = strings.TrimSpace(c.Transcriber.Binary)
	if c.Transcriber.Binary == "" {
		c.Transcriber.Binary = defaultTranscriberBinary
	}
	c.Transcriber.Model = strings.TrimSpace(c.Transcriber.Model)
	if c.Transcriber.Model == "" {
		if value, ok := os.LookupEnv("WHISPER_MODEL"); ok && strings.TrimSpace(value) != "" {
			c.Transcriber.Model = strings.TrimSpace(value)
		} else {
			c.Transcriber.Model = defaultTranscriberModel
		}
	}
	c.Transcriber.Language = strings.TrimSpace(c.Transcriber.Language)
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = strings.TrimSpace(os.Getenv("WHISPER_LANG"))
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
