// Package command defines the forge-cli commands: mint, status,
// operations, convert, and health.
package command
