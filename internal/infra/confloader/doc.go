// Package confloader loads forge-server configuration from YAML files
// and FORGE_-prefixed environment variables, and watches the config
// file for runtime changes.
package confloader
