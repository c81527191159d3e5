// Package mojibake models the Windows-1252 misdecoding that produces garbled
// text such as "âœ…" in place of "✅".
//
// Garble reproduces the corruption for a glyph so repair tables can be written
// in terms of the intended characters, and Flatten produces the lossy form that
// appears after an editor drops the C1 control characters. Decode and Encode
// convert file bytes under a configured encoding and refuse to guess: invalid
// input is an error, never a replacement character.
package mojibake
