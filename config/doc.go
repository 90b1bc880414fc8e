// Package config loads the rag-qa configuration with defaults-first
// precedence: built-in defaults, then an optional YAML file, then RAGQA_*
// environment variables.
package config
