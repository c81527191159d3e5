// Package repair rewrites text files whose box-drawing borders and emoji
// status markers were garbled by a Windows-1252 misdecode.
//
// A Pipeline runs two phases over the whole document. The structural phase
// applies an ordered list of regular-expression rules; order matters because
// later rules see the output of earlier ones. The symbolic phase replaces
// every corrupted emoji sequence from a marker table with an ASCII bracket
// tag such as [OK] or [ERROR]. Text matched by neither phase is left intact.
//
// Repairer wraps a Pipeline with file handling: it locks the target, decodes
// it, transforms it, overwrites it in place and optionally records the run in
// the journal. Failures are returned as they happen; nothing is retried or
// rolled back.
package repair
