// Package config defines the forge-server configuration structure,
// its defaults, validation, and sanitization for safe logging.
//
// Configuration is loaded from a YAML file and FORGE_-prefixed
// environment variables by the confloader package; this package only
// describes the shape of the result.
package config
