package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(level)
	return slog.New(newConsoleHandler(&buf, lvl)), &buf
}

func TestConsoleHandlerLine(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.Info("audio downloaded", String("audio", "/tmp/a.m4a"), Int("tracks", 2))

	line := strings.TrimSuffix(buf.String(), "\n")
	if strings.Contains(line, "\n") {
		t.Fatalf("record must render as a single line: %q", line)
	}
	if !strings.Contains(line, " INFO ") {
		t.Fatalf("missing level label: %q", line)
	}
	if !strings.Contains(line, "audio downloaded") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "audio=/tmp/a.m4a") {
		t.Fatalf("missing string attr: %q", line)
	}
	if !strings.Contains(line, "tracks=2") {
		t.Fatalf("missing int attr: %q", line)
	}
}

func TestConsoleHandlerComponentPrefix(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	NewComponentLogger(logger, "pipeline").Info("strategy: generate subtitles from audio")

	line := buf.String()
	if !strings.Contains(line, "pipeline: strategy: generate subtitles from audio") {
		t.Fatalf("component prefix missing: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component attr should be folded into the prefix: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.Info("probe", String("track", "en        English   vtt, srt"))

	if !strings.Contains(buf.String(), `track="en        English   vtt, srt"`) {
		t.Fatalf("value with spaces should be quoted: %q", buf.String())
	}
}

func TestConsoleHandlerErrorAttr(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.Warn("conversion failed", Error(errors.New("bad block")))

	if !strings.Contains(buf.String(), `error="bad block"`) {
		t.Fatalf("error attr missing: %q", buf.String())
	}
}

func TestConsoleHandlerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record leaked through info level: %q", buf.String())
	}

	logger, buf = newTestLogger(slog.LevelDebug)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "DEBUG visible") {
		t.Fatalf("debug record missing: %q", buf.String())
	}
}

func TestConsoleHandlerGroupPrefix(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.WithGroup("run").Info("done", String("id", "abc"))

	if !strings.Contains(buf.String(), "run.id=abc") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestConsoleHandlerDurationFormatting(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)
	logger.Info("cleanup", Duration("age", 90*time.Minute))

	if !strings.Contains(buf.String(), "age=1h30m0s") {
		t.Fatalf("duration attr missing: %q", buf.String())
	}
}

func TestNoopHandlerDiscards(t *testing.T) {
	handler := NoopHandler{}
	if handler.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("noop handler must report disabled")
	}
	NewNop().Error("dropped")
}
