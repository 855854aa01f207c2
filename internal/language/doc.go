// Package language normalizes configured language identifiers for the
// transcription engine.
package language
