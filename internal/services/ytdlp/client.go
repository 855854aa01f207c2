package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"smartsubs/internal/logging"
	"smartsubs/internal/services"
)

// DefaultBinary is the downloader executable name.
const DefaultBinary = "yt-dlp"

// Filename templates keep outputs identifiable: title truncated to a
// bounded length, suffixed with the video id, extension from content.
const (
	subsTemplate  = "%(title).200s_%(id)s.%(ext)s"
	audioTemplate = "%(title).120B_%(id)s.%(ext)s"
)

// Options carries per-run request options shared by every invocation.
type Options struct {
	// CookiePath is passed as --cookies only when the file exists.
	CookiePath string
	// UserAgent is passed as --user-agent when non-empty.
	UserAgent string
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.CommandExecutor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps yt-dlp CLI interactions.
type Client struct {
	binary string
	opts   Options
	exec   services.CommandExecutor
	logger *slog.Logger
}

// New constructs a yt-dlp client.
func New(binary string, opts Options, logger *slog.Logger, options ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("downloader binary required")
	}
	client := &Client{
		binary: binary,
		opts:   opts,
		exec:   services.NewCommandExecutor(),
		logger: logging.NewComponentLogger(logger, "ytdlp"),
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// baseArgs returns the flags applied to every invocation: the JS
// runtime modern extractors need, plus cookies and user agent when
// configured.
func (c *Client) baseArgs() []string {
	args := []string{"--js-runtimes", "node", "--remote-components", "ejs:github"}
	if c.opts.CookiePath != "" {
		if _, err := os.Stat(c.opts.CookiePath); err == nil {
			args = append(args, "--cookies", c.opts.CookiePath)
		}
	}
	if c.opts.UserAgent != "" {
		args = append(args, "--user-agent", c.opts.UserAgent)
	}
	return args
}

// ListSubs returns the subtitle track listing for url. Only stdout is
// returned; warnings the tool writes to stderr must never reach the
// language matcher. The captured stdout comes back even when the
// command exits non-zero, so callers can scan whatever partial listing
// was produced.
func (c *Client) ListSubs(ctx context.Context, url string) (string, error) {
	args := append(c.baseArgs(), "--list-subs", url)
	c.logger.Debug("listing subtitle tracks", logging.String("url", url))
	output, err := c.exec.Run(ctx, c.binary, args...)
	if err != nil {
		return output, services.Wrap(services.ErrExternalTool, "ytdlp", "list-subs", "", err)
	}
	return output, nil
}

// DownloadSubs fetches every authored and auto-generated subtitle track
// matching langs, converted to SRT, into outputDir.
func (c *Client) DownloadSubs(ctx context.Context, url, langs, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	args := append(c.baseArgs(),
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", langs,
		"--sub-format", "vtt/best",
		"--convert-subs", "srt",
		"-o", filepath.Join(outputDir, subsTemplate),
		url,
	)
	c.logger.Info("downloading subtitle tracks",
		logging.String("url", url),
		logging.String("languages", langs),
	)
	if _, err := c.exec.Run(ctx, c.binary, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "ytdlp", "download-subs", "", err)
	}
	return nil
}

// DownloadAudio fetches the best available audio track into stagingDir.
func (c *Client) DownloadAudio(ctx context.Context, url, stagingDir string) error {
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	args := append(c.baseArgs(),
		"-f", "bestaudio/best",
		"--windows-filenames",
		"-o", filepath.Join(stagingDir, audioTemplate),
		url,
	)
	c.logger.Info("downloading audio track", logging.String("url", url))
	if _, err := c.exec.Run(ctx, c.binary, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "ytdlp", "download-audio", "", err)
	}
	return nil
}
