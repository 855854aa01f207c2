// Package logging constructs the application slog.Logger.
//
// It supports a human-oriented console format (timestamp, level,
// component, key=value attributes) and a JSON format, selected by
// configuration, writing to stdout and optionally a log file.
package logging
