package probe

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Result is the outcome of a subtitle availability probe, computed once
// per run. Line keeps the matching listing line for diagnostics.
type Result struct {
	Found bool
	Line  string
}

// Matcher tests track-listing lines against a set of language patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles a comma-separated list of language patterns. Each
// element is trimmed and compiled as a regular expression.
func NewMatcher(languages string) (*Matcher, error) {
	var patterns []*regexp.Regexp
	for _, raw := range strings.Split(languages, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("language pattern %q: %w", raw, err)
		}
		patterns = append(patterns, pattern)
	}
	if len(patterns) == 0 {
		return nil, errors.New("no language patterns configured")
	}
	return &Matcher{patterns: patterns}, nil
}

// Scan walks the listing line by line and reports the first line any
// pattern matches. An empty listing yields a negative result.
func (m *Matcher) Scan(listing string) Result {
	for _, line := range strings.Split(listing, "\n") {
		for _, pattern := range m.patterns {
			if pattern.MatchString(line) {
				return Result{Found: true, Line: strings.TrimSpace(line)}
			}
		}
	}
	return Result{}
}

// Patterns returns the compiled pattern sources, in order.
func (m *Matcher) Patterns() []string {
	sources := make([]string, 0, len(m.patterns))
	for _, pattern := range m.patterns {
		sources = append(sources, pattern.String())
	}
	return sources
}

// MatchLine reports the first listing line matched by the pattern at
// index i. Used by the CLI to explain per-pattern verdicts.
func (m *Matcher) MatchLine(i int, listing string) (string, bool) {
	if i < 0 || i >= len(m.patterns) {
		return "", false
	}
	for _, line := range strings.Split(listing, "\n") {
		if m.patterns[i].MatchString(line) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}
