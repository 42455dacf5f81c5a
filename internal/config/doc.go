// Package config provides application configuration and output path
// resolution. Configuration is built from defaults, an optional YAML
// file and JEAUDIT_* environment overrides, then validated; Paths is the
// single source of truth for report artifact locations.
package config
