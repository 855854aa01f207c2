package services_test

import (
	"errors"
	"testing"

	"smartsubs/internal/services"
)

func TestWrapTagsWithMarker(t *testing.T) {
	cause := errors.New("exit status 1")
	err := services.Wrap(services.ErrExternalTool, "yt-dlp", "download-audio", "", cause)

	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("error lost its marker: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("error lost its cause: %v", err)
	}
	want := "external tool error: yt-dlp: download-audio: exit status 1"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrConfiguration, "pipeline", "run", "url required", nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("error lost its marker: %v", err)
	}
	want := "configuration error: pipeline: run: url required"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaultsToExternalTool(t *testing.T) {
	err := services.Wrap(nil, "whisper", "", "", errors.New("boom"))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("nil marker should default to ErrExternalTool, got %v", err)
	}
}

func TestWrapWithoutContext(t *testing.T) {
	err := services.Wrap(services.ErrNotFound, "", "", "", nil)
	want := "not found: service failure"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestMarkersAreDistinct(t *testing.T) {
	err := services.Wrap(services.ErrNoAudio, "pipeline", "generate", "", nil)
	if errors.Is(err, services.ErrExternalTool) || errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("marker bled across sentinels: %v", err)
	}
	if !errors.Is(err, services.ErrNoAudio) {
		t.Fatalf("expected ErrNoAudio, got %v", err)
	}
}
