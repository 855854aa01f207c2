package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"smartsubs/internal/config"
	"smartsubs/internal/fileutil"
	"smartsubs/internal/logging"
	"smartsubs/internal/probe"
	"smartsubs/internal/services"
	"smartsubs/internal/staging"
	"smartsubs/internal/subtitles"
)

// PlaceholderName is written to the output directory when a run
// produces no files at all, so callers can rely on a non-empty
// directory without treating "nothing found" as a failure.
const PlaceholderName = "EMPTY.txt"

const placeholderContent = "No subtitles generated"

// lockName is the flock file guarding the staging root. Exactly one
// run is allowed per workspace.
const lockName = "smartsubs.lock"

// Downloader is the subset of the media downloader the pipeline drives.
type Downloader interface {
	ListSubs(ctx context.Context, url string) (string, error)
	DownloadSubs(ctx context.Context, url, langs, outputDir string) error
	DownloadAudio(ctx context.Context, url, stagingDir string) error
}

// Transcriber turns a downloaded audio file into an SRT file.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, outputDir string) error
}

// Result summarizes an acquisition run.
type Result struct {
	// Probe is the availability decision, computed once per run.
	Probe probe.Result
	// Generated is true when the transcription path ran.
	Generated bool
	// Converted lists the SRT files that gained .txt/.lrc siblings.
	Converted []string
	// Placeholder is true when the run wrote the empty-output marker.
	Placeholder bool
}

// Pipeline owns the two-path acquisition flow.
type Pipeline struct {
	cfg         *config.Config
	downloader  Downloader
	transcriber Transcriber
	prober      *probe.Prober
	logger      *slog.Logger
}

// New constructs a pipeline. The language patterns come from cfg; an
// invalid pattern is a configuration error.
func New(cfg *config.Config, downloader Downloader, transcriber Transcriber, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("pipeline requires config")
	}
	if downloader == nil || transcriber == nil {
		return nil, errors.New("pipeline requires downloader and transcriber")
	}
	matcher, err := probe.NewMatcher(cfg.Subtitles.Languages)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "languages", "", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:         cfg,
		downloader:  downloader,
		transcriber: transcriber,
		prober:      probe.New(downloader, matcher, logger),
		logger:      logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Run executes one acquisition for url. The decision between the
// download and generation paths is made exactly once, from the probe
// result, and never revisited.
func (p *Pipeline) Run(ctx context.Context, url string) (Result, error) {
	var result Result

	url = strings.TrimSpace(url)
	if url == "" {
		return result, services.Wrap(services.ErrConfiguration, "pipeline", "run", "url required", nil)
	}

	unlock, err := p.lockWorkspace()
	if err != nil {
		return result, err
	}
	defer unlock()

	staleAge := time.Duration(p.cfg.Paths.StagingStaleHours) * time.Hour
	staging.CleanStale(p.cfg.Paths.StagingDir, staleAge, p.logger)

	result.Probe = p.prober.Probe(ctx, url)
	if result.Probe.Found {
		if err := p.downloadExisting(ctx, url); err != nil {
			return result, err
		}
	} else {
		result.Generated = true
		if err := p.generate(ctx, url); err != nil {
			return result, err
		}
	}

	convert := subtitles.ConvertDir(p.cfg.Paths.OutputDir, p.logger)
	result.Converted = convert.Converted

	placeholder, err := p.ensureNonEmptyOutput()
	if err != nil {
		return result, err
	}
	result.Placeholder = placeholder
	return result, nil
}

func (p *Pipeline) lockWorkspace() (func(), error) {
	if err := os.MkdirAll(p.cfg.Paths.StagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	lock := flock.New(filepath.Join(p.cfg.Paths.StagingDir, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another smartsubs run is already using this workspace")
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			p.logger.Warn("failed to release workspace lock", logging.Error(err))
		}
	}, nil
}

func (p *Pipeline) downloadExisting(ctx context.Context, url string) error {
	p.logger.Info("strategy: download existing subtitles")
	return p.downloader.DownloadSubs(ctx, url, p.cfg.Subtitles.Languages, p.cfg.Paths.OutputDir)
}

func (p *Pipeline) generate(ctx context.Context, url string) error {
	p.logger.Info("strategy: generate subtitles from audio")

	workspace, err := staging.NewWorkspace(p.cfg.Paths.StagingDir, uuid.NewString())
	if err != nil {
		return err
	}
	if err := p.downloader.DownloadAudio(ctx, url, workspace.Path); err != nil {
		return err
	}

	audioPath, err := fileutil.FirstFile(workspace.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return services.Wrap(services.ErrNoAudio, "pipeline", "generate", "staging workspace holds no audio file", nil)
		}
		return fmt.Errorf("inspect staging workspace: %w", err)
	}
	p.logger.Info("audio downloaded", logging.String("audio", audioPath))

	return p.transcriber.Transcribe(ctx, audioPath, p.cfg.Paths.OutputDir)
}

// ensureNonEmptyOutput writes the placeholder marker when the output
// directory ended the run with no files at all.
func (p *Pipeline) ensureNonEmptyOutput() (bool, error) {
	empty, err := fileutil.IsEmpty(p.cfg.Paths.OutputDir)
	if err != nil {
		return false, fmt.Errorf("inspect output directory: %w", err)
	}
	if !empty {
		return false, nil
	}
	if err := os.MkdirAll(p.cfg.Paths.OutputDir, 0o755); err != nil {
		return false, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(p.cfg.Paths.OutputDir, PlaceholderName)
	if err := os.WriteFile(path, []byte(placeholderContent+"\n"), 0o644); err != nil {
		return false, fmt.Errorf("write placeholder: %w", err)
	}
	p.logger.Warn("run produced no subtitle files, wrote placeholder",
		logging.String("path", path),
	)
	return true, nil
}
