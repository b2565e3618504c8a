// Package config defines the server configuration structure.
package config

import (
	"net/url"
	"strings"
)

// Sanitize returns a copy of the config with sensitive fields masked.
//
// This is used for logging configuration without exposing secrets.
// RPC providers commonly embed API keys in the endpoint path or query
// string, so both are masked.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	// Create a shallow copy
	sanitized := *cfg

	sanitized.Ledger.Endpoint = maskEndpoint(sanitized.Ledger.Endpoint)

	return &sanitized
}

// maskEndpoint keeps the scheme and host of an RPC endpoint and masks
// everything after them.
func maskEndpoint(endpoint string) string {
	if endpoint == "" {
		return ""
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return maskSecret(endpoint)
	}
	masked := u.Scheme + "://" + u.Host
	if u.Path != "" && u.Path != "/" {
		masked += "/" + maskSecret(strings.TrimPrefix(u.Path, "/"))
	}
	if u.RawQuery != "" {
		masked += "?" + maskSecret(u.RawQuery)
	}
	return masked
}

// maskSecret masks a secret value for safe logging.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
