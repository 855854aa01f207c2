package main

import (
	"strings"

	"github.com/spf13/cobra"

	"smartsubs/internal/config"
)

// runFlags are the per-invocation overrides shared by fetch and probe.
type runFlags struct {
	langs      string
	model      string
	language   string
	userAgent  string
	cookiePath string
	outputDir  string
}

func registerRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.langs, "langs", "", "Comma-separated language patterns (overrides config)")
	cmd.Flags().StringVar(&flags.model, "model", "", "Transcription model size (overrides config)")
	cmd.Flags().StringVar(&flags.language, "language", "", "Pin the spoken language for transcription (overrides config)")
	cmd.Flags().StringVar(&flags.userAgent, "user-agent", "", "User agent for downloader requests (overrides config)")
	cmd.Flags().StringVar(&flags.cookiePath, "cookies", "", "Cookie file for downloader requests (overrides config)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for subtitle output (overrides config)")
}

// apply copies the set flags over the loaded configuration and
// revalidates the result.
func (f *runFlags) apply(cfg *config.Config) error {
	if value := strings.TrimSpace(f.langs); value != "" {
		cfg.Subtitles.Languages = value
	}
	if value := strings.TrimSpace(f.model); value != "" {
		cfg.Transcriber.Model = value
	}
	if value := strings.TrimSpace(f.language); value != "" {
		cfg.Transcriber.Language = value
	}
	if value := strings.TrimSpace(f.userAgent); value != "" {
		cfg.Downloader.UserAgent = value
	}
	if value := strings.TrimSpace(f.cookiePath); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return err
		}
		cfg.Downloader.CookiePath = expanded
	}
	if value := strings.TrimSpace(f.outputDir); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return err
		}
		cfg.Paths.OutputDir = expanded
	}
	return cfg.Validate()
}
