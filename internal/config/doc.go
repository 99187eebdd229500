// Package config loads, normalizes, and validates the module configuration
// document.
//
// The document is a sectioned TOML file kept in the module root. It supplies
// repository defaults, guarantees leading-dot extensions, and distinguishes a
// missing file, malformed content, and missing required keys with dedicated
// error markers so callers can react precisely. Always obtain settings
// through this package so downstream code receives sanitized values.
package config
