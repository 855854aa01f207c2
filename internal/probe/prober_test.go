package probe_test

import (
	"context"
	"errors"
	"testing"

	"smartsubs/internal/probe"
)

type fakeLister struct {
	listing string
	err     error
	calls   int
	lastURL string
}

func (f *fakeLister) ListSubs(ctx context.Context, url string) (string, error) {
	f.calls++
	f.lastURL = url
	return f.listing, f.err
}

func TestProbeFindsTrack(t *testing.T) {
	matcher, err := probe.NewMatcher("en.*")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	lister := &fakeLister{listing: "en: English\nde: German"}
	prober := probe.New(lister, matcher, nil)

	result := prober.Probe(context.Background(), "https://example.com/watch?v=abc")
	if !result.Found {
		t.Fatal("expected a positive probe result")
	}
	if result.Line != "en: English" {
		t.Fatalf("unexpected matched line: %q", result.Line)
	}
	if lister.calls != 1 {
		t.Fatalf("lister called %d times, want 1", lister.calls)
	}
	if lister.lastURL != "https://example.com/watch?v=abc" {
		t.Fatalf("lister received url %q", lister.lastURL)
	}
}

func TestProbeNoMatch(t *testing.T) {
	matcher, err := probe.NewMatcher("zh-Hans")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	lister := &fakeLister{listing: "en: English"}
	prober := probe.New(lister, matcher, nil)

	if result := prober.Probe(context.Background(), "url"); result.Found {
		t.Fatalf("unexpected match: %q", result.Line)
	}
}

// A failed listing command is equivalent to an empty listing: the run
// falls through to subtitle generation rather than aborting.
func TestProbeToleratesListerFailure(t *testing.T) {
	matcher, err := probe.NewMatcher("en.*")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	lister := &fakeLister{err: errors.New("exit status 1")}
	prober := probe.New(lister, matcher, nil)

	if result := prober.Probe(context.Background(), "url"); result.Found {
		t.Fatal("failed listing should yield a negative result")
	}
}

func TestProbeScansPartialOutputOnFailure(t *testing.T) {
	matcher, err := probe.NewMatcher("en.*")
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	lister := &fakeLister{listing: "en: English", err: errors.New("exit status 1")}
	prober := probe.New(lister, matcher, nil)

	result := prober.Probe(context.Background(), "url")
	if !result.Found {
		t.Fatal("partial output should still be scanned")
	}
}
