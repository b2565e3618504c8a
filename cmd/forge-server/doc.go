// forge-server is the Soul Forge mint relay daemon.
//
// Usage:
//
//	forge-server -config /etc/forge/forge-server.yaml
//
// Configuration can also be supplied via FORGE_-prefixed environment
// variables; see internal/server/config for the full schema.
package main
