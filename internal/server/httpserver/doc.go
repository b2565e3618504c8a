// Package httpserver assembles the forge-server HTTP surface: the
// mint relay API, operation status lookups, health probes and the
// metrics endpoint, with request-ID, panic-recovery, rate-limit and
// request-logging middleware.
package httpserver
