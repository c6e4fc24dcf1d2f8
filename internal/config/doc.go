// Package config loads, validates, and defaults the TOML configuration for
// reelsort. Paths are tilde-expanded and normalized to absolute form during
// load; the OMDB_API_KEY environment variable overrides the file value.
package config
