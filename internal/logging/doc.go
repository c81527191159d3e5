// Package logging assembles structured slog loggers used across mojifix.
//
// It owns the console and JSON handlers, level parsing and output routing, and
// the field-name constants repair code tags its records with (run_id, path,
// hit counts). Loggers write to stderr by default because stdout carries the
// one-line completion messages scripts depend on. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
