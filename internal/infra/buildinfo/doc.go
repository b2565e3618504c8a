// Package buildinfo exposes the version, commit and build timestamp
// stamped into forge binaries at link time.
package buildinfo
