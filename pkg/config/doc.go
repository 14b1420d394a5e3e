// Package config handles configuration management for tmplmerge.
// It layers embedded TOML defaults, an optional user TOML file and
// TMPLMERGE_* environment variables using koanf.
package config
