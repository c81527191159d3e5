// Package config loads, normalizes, and validates mojifix configuration data.
//
// It supplies repository defaults (including the historical default target
// src/pages/Designer.jsx), expands user paths, reads TOML files and honours
// the MOJIFIX_LOG_LEVEL and MOJIFIX_JOURNAL environment overrides. Rule and
// marker overrides are checked here (patterns must compile, markers need a
// tag and exactly one key) so the CLI can fail before touching any file.
package config
