// Package journal records repair runs in a small SQLite database.
//
// Each entry keeps the run ID, the target path, byte counts and SHA-256
// digests before and after the rewrite, and the number of structural and
// marker replacements. The journal is an audit trail, not a backup: it never
// stores file content.
//
// Schema changes bump schemaVersion in schema.go; users delete the database
// to adopt the new schema.
package journal
