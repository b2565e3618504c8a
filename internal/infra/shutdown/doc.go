// Package shutdown coordinates graceful teardown of forge-server:
// named hooks run in reverse registration order when a signal arrives
// or shutdown is triggered programmatically.
package shutdown
