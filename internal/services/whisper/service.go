package whisper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	langpkg "smartsubs/internal/language"
	"smartsubs/internal/logging"
	"smartsubs/internal/services"
)

const (
	// DefaultBinary is the transcription executable name.
	DefaultBinary = "whisper"
	// DefaultModel is used when no model size is configured.
	DefaultModel = "small"
)

// Config carries transcription settings.
type Config struct {
	Model string
	// Language, when set, pins the spoken language; empty lets the
	// engine detect it.
	Language string
}

// Option configures the service.
type Option func(*Service)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.CommandExecutor) Option {
	return func(s *Service) {
		if exec != nil {
			s.exec = exec
		}
	}
}

// Service provides whisper transcription capabilities.
type Service struct {
	binary string
	cfg    Config
	exec   services.CommandExecutor
	logger *slog.Logger
}

// New constructs a whisper service.
func New(binary string, cfg Config, logger *slog.Logger, options ...Option) (*Service, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("transcriber binary required")
	}
	svc := &Service{
		binary: binary,
		cfg:    cfg,
		exec:   services.NewCommandExecutor(),
		logger: logging.NewComponentLogger(logger, "whisper"),
	}
	for _, opt := range options {
		opt(svc)
	}
	return svc, nil
}

// Model returns the effective model name for logging.
func (s *Service) Model() string {
	if s.cfg.Model != "" {
		return s.cfg.Model
	}
	return DefaultModel
}

// Transcribe runs speech-to-text over audioPath, writing an SRT file
// into outputDir. The configured language, normalized to its base ISO
// code, pins the spoken language when set.
func (s *Service) Transcribe(ctx context.Context, audioPath, outputDir string) error {
	if strings.TrimSpace(audioPath) == "" {
		return errors.New("transcribe: audio path required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	args := []string{
		audioPath,
		"--model", s.Model(),
		"--output_dir", outputDir,
		"--output_format", "srt",
		"--verbose", "False",
	}
	if lang := langpkg.ToISO2(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}

	s.logger.Info("transcribing audio",
		logging.String("audio", audioPath),
		logging.String("model", s.Model()),
	)
	if _, err := s.exec.Run(ctx, s.binary, args...); err != nil {
		return services.Wrap(services.ErrExternalTool, "whisper", "transcribe", "", err)
	}
	return nil
}
