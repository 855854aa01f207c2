// Package config loads, normalizes, and validates smartsubs
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and falls back to the LANGS,
// WHISPER_MODEL, WHISPER_LANG, and UA environment variables for values
// the file leaves unset. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config
