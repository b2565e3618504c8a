// Package logger provides structured logging for Soul Forge.
package logger

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns that are fully redacted. "key" deliberately
// catches private_key, keypair, api_key, and the like; addresses are
// logged under *_address keys, which are public and matched nowhere
// here.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"private",
	"keypair",
	"seed",
	"mnemonic",
	"credential",
	"auth",
	"bearer",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// maxBase58ValueLength guards against logging raw key material: an
// ed25519 private key renders to 87-88 base58 characters, well above
// any address (up to 44) or transaction signature (up to 88... but
// signatures are logged under *_id keys). Any suspiciously long base58
// string under a generic key is masked.
const maxBase58ValueLength = 64

// redactSensitive checks if an attribute contains sensitive data and
// redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				if a.Value.String() != "" {
					return slog.String(a.Key, redactedValue)
				}
				break
			}
		}

		val := a.Value.String()
		if len(val) > maxBase58ValueLength && isBase58(val) && !allowedLongKey(keyLower) {
			return slog.String(a.Key, redactedValue)
		}
	}

	// Handle nested groups recursively.
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// allowedLongKey reports whether a key is known to carry long public
// base58 values (transaction signatures).
func allowedLongKey(keyLower string) bool {
	return strings.Contains(keyLower, "transaction") || strings.HasSuffix(keyLower, "_id")
}

// isBase58 reports whether s consists only of base58 alphabet characters.
func isBase58(s string) bool {
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
		case r >= 'A' && r <= 'H':
		case r >= 'J' && r <= 'N':
		case r >= 'P' && r <= 'Z':
		case r >= 'a' && r <= 'k':
		case r >= 'm' && r <= 'z':
		default:
			return false
		}
	}
	return len(s) > 0
}
