package subtitles

import "strings"

// PlainText renders entries as a transcript: one line per cue, no
// timing or index information. Cues that are empty after trimming are
// omitted entirely.
func PlainText(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		text := collapseText(entry.Text)
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// LyricFile renders entries in lyric format: each line is the cue's
// start tag immediately followed by its text, with no separator. Only
// the start time survives the conversion; end times are not
// representable in the format.
func LyricFile(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		text := collapseText(entry.Text)
		if text == "" {
			continue
		}
		lines = append(lines, LyricTag(Seconds(entry.Start))+text)
	}
	return strings.Join(lines, "\n")
}

// collapseText flattens a multi-line cue into a single trimmed line,
// replacing embedded newlines with single spaces.
func collapseText(text string) string {
	parts := make([]string, 0, 2)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
