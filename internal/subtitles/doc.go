// Package subtitles implements the SRT processing core: cue timestamp
// parsing, lenient block parsing, and conversion of parsed cues into
// plain-text transcripts and lyric-tagged (.lrc) output.
package subtitles
