// Package handler implements the forge-server HTTP endpoints: the
// public mint relay contract (POST /api/mint), operation status
// lookups, and health probes.
package handler
