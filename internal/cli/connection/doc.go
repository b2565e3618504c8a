// Package connection wraps the HTTP client forge-cli uses to talk to
// a forge-server instance.
package connection
