// Command mojifix repairs source files whose box-drawing borders and emoji
// log markers were garbled by a Windows-1252 misdecode.
//
// `mojifix repair` rewrites the configured targets (or the paths given on the
// command line) in place and prints one completion line per file. `check`
// reports what would change without writing, `rules` prints the active
// substitution tables, and `history` lists runs recorded in the journal.
package main
