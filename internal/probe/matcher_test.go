package probe_test

import (
	"testing"

	"smartsubs/internal/probe"
)

const sampleListing = `[info] Available subtitles for dQw4w9WgXcQ:
Language  Name      Formats
de        German    vtt
en        English   vtt, srt
fr        French    vtt
`

func TestNewMatcherSplitsAndTrims(t *testing.T) {
	matcher, err := probe.NewMatcher(" zh-Hans , zh-Hant , en.* ")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	patterns := matcher.Patterns()
	if len(patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(patterns))
	}
	if patterns[0] != "zh-Hans" || patterns[2] != "en.*" {
		t.Fatalf("unexpected patterns: %v", patterns)
	}
}

func TestNewMatcherRejectsInvalidPattern(t *testing.T) {
	if _, err := probe.NewMatcher("en,["); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestNewMatcherRejectsEmptyInput(t *testing.T) {
	for _, input := range []string{"", " , ,"} {
		if _, err := probe.NewMatcher(input); err == nil {
			t.Fatalf("NewMatcher(%q) succeeded, want error", input)
		}
	}
}

func TestScanFindsFirstMatchingLine(t *testing.T) {
	matcher, err := probe.NewMatcher("en.*")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	result := matcher.Scan(sampleListing)
	if !result.Found {
		t.Fatal("expected a match")
	}
	if result.Line != "en        English   vtt, srt" {
		t.Fatalf("unexpected matched line: %q", result.Line)
	}
}

func TestScanNoMatch(t *testing.T) {
	matcher, err := probe.NewMatcher("zh-Hans,zh-Hant")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	result := matcher.Scan(sampleListing)
	if result.Found {
		t.Fatalf("unexpected match: %q", result.Line)
	}
	if result.Line != "" {
		t.Fatalf("negative result should carry no line, got %q", result.Line)
	}
}

func TestScanEmptyListing(t *testing.T) {
	matcher, err := probe.NewMatcher("en.*")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	if result := matcher.Scan(""); result.Found {
		t.Fatal("empty listing should not match")
	}
}

func TestMatchLinePerPattern(t *testing.T) {
	matcher, err := probe.NewMatcher("zh-Hans,en.*")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}

	if line, ok := matcher.MatchLine(0, sampleListing); ok {
		t.Fatalf("pattern 0 should not match, got %q", line)
	}
	line, ok := matcher.MatchLine(1, sampleListing)
	if !ok {
		t.Fatal("pattern 1 should match")
	}
	if line != "en        English   vtt, srt" {
		t.Fatalf("unexpected line for pattern 1: %q", line)
	}
	if _, ok := matcher.MatchLine(5, sampleListing); ok {
		t.Fatal("out-of-range pattern index should not match")
	}
}
