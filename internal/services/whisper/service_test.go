package whisper_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"smartsubs/internal/services"
	"smartsubs/internal/services/whisper"
)

type fakeExecutor struct {
	err    error
	binary string
	args   []string
}

func (f *fakeExecutor) Run(ctx context.Context, binary string, args ...string) (string, error) {
	f.binary = binary
	f.args = args
	return "", f.err
}

func newService(t *testing.T, cfg whisper.Config, exec *fakeExecutor) *whisper.Service {
	t.Helper()
	svc, err := whisper.New("whisper", cfg, nil, whisper.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return svc
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := whisper.New("", whisper.Config{}, nil); err == nil {
		t.Fatal("expected error for blank binary")
	}
}

func TestModelFallsBackToDefault(t *testing.T) {
	svc := newService(t, whisper.Config{}, &fakeExecutor{})
	if svc.Model() != whisper.DefaultModel {
		t.Fatalf("Model = %q, want %q", svc.Model(), whisper.DefaultModel)
	}
	svc = newService(t, whisper.Config{Model: "medium"}, &fakeExecutor{})
	if svc.Model() != "medium" {
		t.Fatalf("Model = %q, want medium", svc.Model())
	}
}

func TestTranscribeArgs(t *testing.T) {
	outputDir := t.TempDir()
	exec := &fakeExecutor{}
	svc := newService(t, whisper.Config{Model: "small"}, exec)

	if err := svc.Transcribe(context.Background(), "/tmp/audio.m4a", outputDir); err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if exec.binary != "whisper" {
		t.Fatalf("binary = %q", exec.binary)
	}
	want := []string{
		"/tmp/audio.m4a",
		"--model", "small",
		"--output_dir", outputDir,
		"--output_format", "srt",
		"--verbose", "False",
	}
	if !slices.Equal(exec.args, want) {
		t.Fatalf("args = %v, want %v", exec.args, want)
	}
}

func TestTranscribeNormalizesLanguage(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newService(t, whisper.Config{Language: "zh-Hans"}, exec)

	if err := svc.Transcribe(context.Background(), "/tmp/audio.m4a", t.TempDir()); err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	idx := slices.Index(exec.args, "--language")
	if idx < 0 || exec.args[idx+1] != "zh" {
		t.Fatalf("expected --language zh, args %v", exec.args)
	}
}

func TestTranscribeOmitsLanguageWhenUnset(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newService(t, whisper.Config{}, exec)

	if err := svc.Transcribe(context.Background(), "/tmp/audio.m4a", t.TempDir()); err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}
	if slices.Contains(exec.args, "--language") {
		t.Fatalf("language flag must be omitted for auto-detect, args %v", exec.args)
	}
}

func TestTranscribeRequiresAudioPath(t *testing.T) {
	svc := newService(t, whisper.Config{}, &fakeExecutor{})
	if err := svc.Transcribe(context.Background(), "  ", t.TempDir()); err == nil {
		t.Fatal("expected error for blank audio path")
	}
}

func TestTranscribeWrapsFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 2")}
	svc := newService(t, whisper.Config{}, exec)

	err := svc.Transcribe(context.Background(), "/tmp/audio.m4a", t.TempDir())
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}
