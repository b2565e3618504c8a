// Package logger provides structured logging for Soul Forge.
package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
)

// logOne renders one Info record through a JSON handler and returns the
// decoded attributes.
func logOne(t *testing.T, args ...any) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("test entry", args...)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record: %v (%q)", err, buf.String())
	}
	return rec
}

// TestRedact_SensitiveKeys tests key-pattern redaction.
func TestRedact_SensitiveKeys(t *testing.T) {
	tests := []struct {
		key string
		val string
	}{
		{"private_key", "anything"},
		{"keypair_file_contents", "anything"},
		{"seed_phrase", "alpha bravo charlie"},
		{"api_secret", "hunter2"},
		{"authorization", "Bearer abc"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec := logOne(t, tt.key, tt.val)
			if rec[tt.key] != redactedValue {
				t.Errorf("%s = %v, want %s", tt.key, rec[tt.key], redactedValue)
			}
		})
	}
}

// TestRedact_PrivateKeyMaterial tests that a raw base58 private key is
// masked even under an innocuous key name.
func TestRedact_PrivateKeyMaterial(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("NewRandomPrivateKey failed: %v", err)
	}

	rec := logOne(t, "note", key.String())
	if got, _ := rec["note"].(string); got != redactedValue {
		t.Errorf("raw private key leaked into log output")
	}
}

// TestRedact_PublicValuesPass tests that addresses and transaction ids
// are not masked.
func TestRedact_PublicValuesPass(t *testing.T) {
	addr := solana.NewWallet().PublicKey().String()
	rec := logOne(t,
		"mint_address", addr,
		"transaction_id", strings.Repeat("3", 87),
	)

	if rec["mint_address"] != addr {
		t.Errorf("mint_address masked: %v", rec["mint_address"])
	}
	if rec["transaction_id"] == redactedValue {
		t.Error("transaction_id masked")
	}
}

// TestSetLevel tests dynamic level adjustment.
func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug logged at info level")
	}

	SetLevel("debug")
	defer SetLevel("info")

	log.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug suppressed after SetLevel(debug)")
	}
	if GetLevel() != "debug" {
		t.Errorf("GetLevel = %s", GetLevel())
	}
}
