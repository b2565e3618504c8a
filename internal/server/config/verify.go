// Package config defines the server configuration structure.
package config

import (
	"errors"
	"net/url"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyLedger(&cfg.Ledger); err != nil {
		return err
	}
	if err := verifySigner(&cfg.Signer); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyMint(&cfg.Mint); err != nil {
		return err
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return errors.New("server.http: tls_cert_file and tls_key_file must be set together")
	}
	return nil
}

func verifyLedger(cfg *LedgerSection) error {
	if cfg.Endpoint == "" {
		return errors.New("ledger.endpoint is required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("ledger.endpoint must be an http(s) URL")
	}
	return nil
}

func verifySigner(cfg *SignerSection) error {
	if cfg.KeypairFile == "" {
		return errors.New("signer.keypair_file is required")
	}
	if _, err := os.Stat(cfg.KeypairFile); err != nil {
		return errors.New("signer.keypair_file: " + err.Error())
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if cfg.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	// Check if data directory exists or can be created
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return errors.New("cannot create data directory: " + err.Error())
	}

	if cfg.GCInterval <= 0 {
		return errors.New("storage.gc_interval must be positive")
	}

	return nil
}

func verifyMint(cfg *MintSection) error {
	if cfg.ConfirmTimeout <= 0 {
		return errors.New("mint.confirm_timeout must be positive")
	}
	if cfg.PollInterval <= 0 {
		return errors.New("mint.poll_interval must be positive")
	}
	if cfg.PollInterval >= cfg.ConfirmTimeout {
		return errors.New("mint.poll_interval must be shorter than mint.confirm_timeout")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("mint.rate_limit must be positive")
	}
	if cfg.RateBurst < 1 {
		return errors.New("mint.rate_burst must be at least 1")
	}
	return nil
}
