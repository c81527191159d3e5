// Package preflight provides readiness checks for the files and directories
// a repair run touches.
//
// `mojifix config validate` runs RunAll and prints one status line per
// check. Targets must be regular files the current user can read and write;
// the journal directory is only checked when the journal is enabled.
package preflight
