// Package logging assembles the structured slog loggers used across the
// pipeline.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context-aware helpers so stage code automatically tags log lines
// with the active stage and run correlation ID. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
