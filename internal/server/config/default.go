// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr = "127.0.0.1:5080"

	DefaultLedgerEndpoint = "https://api.devnet.solana.com"

	DefaultDataDir    = "/var/lib/forge-server/data"
	DefaultGCInterval = 10 * time.Minute

	DefaultConfirmTimeout = 60 * time.Second
	DefaultPollInterval   = 2 * time.Second
	DefaultRateLimit      = 1.0
	DefaultRateBurst      = 3

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr: DefaultHTTPAddr,
			},
		},
		Ledger: LedgerSection{
			Endpoint: DefaultLedgerEndpoint,
		},
		Storage: StorageSection{
			DataDir:    DefaultDataDir,
			SyncWrites: true,
			GCInterval: DefaultGCInterval,
		},
		Mint: MintSection{
			ConfirmTimeout: DefaultConfirmTimeout,
			PollInterval:   DefaultPollInterval,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
