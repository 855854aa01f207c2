// Package pipeline orchestrates one subtitle acquisition run: probe
// for existing tracks, branch into download or audio-plus-transcription,
// then convert every resulting SRT file into plain-text and lyric
// outputs.
package pipeline
