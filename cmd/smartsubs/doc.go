// Package main hosts the smartsubs CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// acquisition runs, probe-only checks, standalone conversions, external
// tool checks, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands
// can focus on user experience instead of wiring.
package main
