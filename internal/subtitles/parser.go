package subtitles

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is one parsed subtitle cue. Text keeps embedded newlines from
// multi-line cues; conversion collapses them to single spaces.
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

var blockSeparator = regexp.MustCompile(`\n[ \t]*\n`)

// Parse extracts the ordered cue sequence from SRT file content.
//
// Blocks are separated by blank lines; each block carries an integer
// index line, a "start --> end" timestamp line, and one or more text
// lines. Malformed blocks are skipped rather than aborting the file,
// and a final block without a trailing blank line is accepted. Empty
// input yields an empty sequence.
func Parse(content string) []Entry {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var entries []Entry
	for _, block := range blockSeparator.Split(content, -1) {
		if entry, ok := parseBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseBlock(block string) (Entry, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return Entry{}, false
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Entry{}, false
	}
	start, end, ok := parseCueTimes(lines[1])
	if !ok {
		return Entry{}, false
	}

	return Entry{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.Join(lines[2:], "\n"),
	}, true
}

// parseCueTimes splits a "start --> end" line. Trailing cue settings
// after the end timestamp (VTT-style position data) are ignored.
func parseCueTimes(line string) (time.Duration, time.Duration, bool) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	endFields := strings.Fields(parts[1])
	if len(endFields) == 0 {
		return 0, 0, false
	}
	end, err := ParseTimestamp(endFields[0])
	if err != nil {
		return 0, 0, false
	}
	if end < start {
		return 0, 0, false
	}
	return start, end, true
}
