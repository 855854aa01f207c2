// Package whisper wraps the whisper CLI for speech-to-text subtitle
// generation.
package whisper
