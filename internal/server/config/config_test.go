// Package config defines the server configuration structure.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeKeypair creates a placeholder keypair file for verify tests.
func writeKeypair(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treasury.json")
	if err := os.WriteFile(path, []byte("[1,2,3]"), 0o600); err != nil {
		t.Fatalf("write keypair file: %v", err)
	}
	return path
}

func validConfig(t *testing.T) *ServerConfig {
	t.Helper()
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Signer.KeypairFile = writeKeypair(t)
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.Server.HTTP.Addr, DefaultHTTPAddr)
	}
	if cfg.Ledger.Endpoint != DefaultLedgerEndpoint {
		t.Errorf("Ledger.Endpoint = %q, want %q", cfg.Ledger.Endpoint, DefaultLedgerEndpoint)
	}
	if cfg.Storage.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, DefaultDataDir)
	}
	if !cfg.Storage.SyncWrites {
		t.Error("SyncWrites should be enabled by default")
	}
	if cfg.Mint.ConfirmTimeout != DefaultConfirmTimeout {
		t.Errorf("ConfirmTimeout = %v, want %v", cfg.Mint.ConfirmTimeout, DefaultConfirmTimeout)
	}
	if cfg.Mint.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", cfg.Mint.PollInterval, DefaultPollInterval)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
}

func TestVerify_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestVerify_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ServerConfig)
		want   string
	}{
		{
			name:   "empty http addr",
			mutate: func(cfg *ServerConfig) { cfg.Server.HTTP.Addr = "" },
			want:   "server.http.addr",
		},
		{
			name:   "tls cert without key",
			mutate: func(cfg *ServerConfig) { cfg.Server.HTTP.TLSCertFile = "/tmp/cert.pem" },
			want:   "tls_cert_file and tls_key_file",
		},
		{
			name:   "empty ledger endpoint",
			mutate: func(cfg *ServerConfig) { cfg.Ledger.Endpoint = "" },
			want:   "ledger.endpoint",
		},
		{
			name:   "non-http ledger endpoint",
			mutate: func(cfg *ServerConfig) { cfg.Ledger.Endpoint = "ws://api.devnet.solana.com" },
			want:   "http(s)",
		},
		{
			name:   "missing keypair file",
			mutate: func(cfg *ServerConfig) { cfg.Signer.KeypairFile = "/nonexistent/treasury.json" },
			want:   "signer.keypair_file",
		},
		{
			name:   "empty data dir",
			mutate: func(cfg *ServerConfig) { cfg.Storage.DataDir = "" },
			want:   "storage.data_dir",
		},
		{
			name:   "zero gc interval",
			mutate: func(cfg *ServerConfig) { cfg.Storage.GCInterval = 0 },
			want:   "storage.gc_interval",
		},
		{
			name:   "zero confirm timeout",
			mutate: func(cfg *ServerConfig) { cfg.Mint.ConfirmTimeout = 0 },
			want:   "mint.confirm_timeout",
		},
		{
			name: "poll interval exceeds timeout",
			mutate: func(cfg *ServerConfig) {
				cfg.Mint.PollInterval = 2 * time.Minute
			},
			want: "poll_interval",
		},
		{
			name:   "zero rate limit",
			mutate: func(cfg *ServerConfig) { cfg.Mint.RateLimit = 0 },
			want:   "mint.rate_limit",
		},
		{
			name:   "zero rate burst",
			mutate: func(cfg *ServerConfig) { cfg.Mint.RateBurst = 0 },
			want:   "mint.rate_burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := Verify(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestVerify_CreateDataDir(t *testing.T) {
	cfg := validConfig(t)
	newDir := filepath.Join(t.TempDir(), "subdir", "data")
	cfg.Storage.DataDir = newDir

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}

	// Check directory was created
	if _, err := os.Stat(newDir); os.IsNotExist(err) {
		t.Error("Data directory should have been created")
	}
}

func TestSanitize(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Endpoint = "https://mainnet.helius-rpc.com/?api-key=aaaabbbbccccdddd"

	sanitized := Sanitize(cfg)

	// Original should be unchanged
	if !strings.Contains(cfg.Ledger.Endpoint, "aaaabbbbccccdddd") {
		t.Error("Original config should not be modified")
	}
	if strings.Contains(sanitized.Ledger.Endpoint, "aaaabbbbccccdddd") {
		t.Errorf("Sanitized endpoint still contains api key: %q", sanitized.Ledger.Endpoint)
	}
	if !strings.HasPrefix(sanitized.Ledger.Endpoint, "https://mainnet.helius-rpc.com") {
		t.Errorf("Sanitized endpoint lost its host: %q", sanitized.Ledger.Endpoint)
	}
}

func TestSanitize_PathKey(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Endpoint = "https://rpc.example.com/v2/secret-project-key"

	sanitized := Sanitize(cfg)
	if strings.Contains(sanitized.Ledger.Endpoint, "secret-project-key") {
		t.Errorf("path-embedded key not masked: %q", sanitized.Ledger.Endpoint)
	}
}

func TestSanitize_PlainEndpoint(t *testing.T) {
	cfg := Default()

	sanitized := Sanitize(cfg)
	if sanitized.Ledger.Endpoint != DefaultLedgerEndpoint {
		t.Errorf("plain endpoint should pass unchanged, got %q", sanitized.Ledger.Endpoint)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a", "****"},
		{"abcd", "****"},
		{"abcde", "ab*de"},
		{"1234567890", "12******90"},
	}

	for _, tt := range tests {
		result := maskSecret(tt.input)
		if result != tt.expected {
			t.Errorf("maskSecret(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
