// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for forge-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Ledger  LedgerSection  `koanf:"ledger"`
	Signer  SignerSection  `koanf:"signer"`
	Storage StorageSection `koanf:"storage"`
	Mint    MintSection    `koanf:"mint"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`
}

// LedgerSection configures the ledger RPC connection.
type LedgerSection struct {
	// Endpoint is the JSON-RPC endpoint URL. Provider API keys
	// embedded in the URL are masked when the config is logged.
	Endpoint string `koanf:"endpoint"`
}

// SignerSection configures the treasury signer.
type SignerSection struct {
	// KeypairFile is the path to the treasury keypair in the
	// standard solana-keygen JSON format.
	KeypairFile string `koanf:"keypair_file"`
}

// StorageSection configures operation storage.
type StorageSection struct {
	DataDir    string        `koanf:"data_dir"`
	SyncWrites bool          `koanf:"sync_writes"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// MintSection configures mint operation behavior.
type MintSection struct {
	// ConfirmTimeout bounds how long a launch waits for ledger
	// confirmation before reporting a timeout.
	ConfirmTimeout time.Duration `koanf:"confirm_timeout"`

	// PollInterval is the delay between confirmation status polls.
	PollInterval time.Duration `koanf:"poll_interval"`

	// RateLimit is the sustained per-client request rate for the
	// mint endpoint, in requests per second.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the per-client burst allowance.
	RateBurst int `koanf:"rate_burst"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
