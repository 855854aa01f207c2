package deps_test

import (
	"testing"

	"smartsubs/internal/deps"
)

func TestDefaultRequirements(t *testing.T) {
	requirements := deps.Default("yt-dlp", "whisper")
	if len(requirements) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(requirements))
	}
	if requirements[0].Command != "yt-dlp" || requirements[0].Optional {
		t.Fatalf("unexpected downloader requirement: %+v", requirements[0])
	}
	if requirements[1].Command != "whisper" || requirements[1].Optional {
		t.Fatalf("unexpected transcriber requirement: %+v", requirements[1])
	}
	if requirements[2].Command != "node" || !requirements[2].Optional {
		t.Fatalf("node must be optional: %+v", requirements[2])
	}
}

func TestCheckBinaries(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "shell", Command: "sh"},
		{Name: "ghost", Command: "definitely-not-installed-anywhere"},
		{Name: "blank", Command: "  "},
	})
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("sh should be available: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Fatalf("missing binary should carry a detail: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("blank command should be flagged: %+v", statuses[2])
	}
}
