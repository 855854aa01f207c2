// Package probe decides whether a video already has subtitle tracks
// matching the configured language patterns.
package probe
