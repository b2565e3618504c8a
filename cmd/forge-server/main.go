// Package main provides the entry point for forge-server.
//
// forge-server is the Soul Forge mint relay: it accepts token
// manifests over HTTP, assembles and signs the creation transaction
// with a server-held treasury key, submits it to the ledger, and
// tracks each operation to a terminal state.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/twistedsoul/forge-go/internal/chain/rpcledger"
	"github.com/twistedsoul/forge-go/internal/core/service"
	"github.com/twistedsoul/forge-go/internal/infra/buildinfo"
	"github.com/twistedsoul/forge-go/internal/infra/confloader"
	"github.com/twistedsoul/forge-go/internal/infra/shutdown"
	"github.com/twistedsoul/forge-go/internal/server/config"
	"github.com/twistedsoul/forge-go/internal/server/httpserver"
	"github.com/twistedsoul/forge-go/internal/signer"
	"github.com/twistedsoul/forge-go/internal/storage"
	"github.com/twistedsoul/forge-go/internal/telemetry/logger"
	"github.com/twistedsoul/forge-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("forge-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting forge-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile,
		"ledger_endpoint", config.Sanitize(cfg).Ledger.Endpoint)

	// Operation store
	store, err := storage.NewBadgerStore(storage.BadgerConfig{
		Dir:        cfg.Storage.DataDir,
		SyncWrites: cfg.Storage.SyncWrites,
		GCInterval: cfg.Storage.GCInterval,
	}, logger.Slog(log))
	if err != nil {
		return fmt.Errorf("open operation store: %w", err)
	}

	// Ledger client and treasury signer
	ledger := rpcledger.New(cfg.Ledger.Endpoint)
	treasury, err := signer.LoadLocal(cfg.Signer.KeypairFile)
	if err != nil {
		store.Close()
		return fmt.Errorf("load treasury signer: %w", err)
	}
	log.Info("treasury signer loaded", "owner_address", treasury.PublicKey().String())

	metrics := metric.NewRegistry()

	mintSvc := service.NewMintService(ledger, treasury, store, log, metrics, service.MintConfig{
		ConfirmTimeout: cfg.Mint.ConfirmTimeout,
		PollInterval:   cfg.Mint.PollInterval,
	})

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		MintService: mintSvc,
		Logger:      log,
		Metrics:     metrics,
		RateLimit:   cfg.Mint.RateLimit,
		RateBurst:   cfg.Mint.RateBurst,
	})
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(30*time.Second, log)
	shutdownHandler.OnShutdown("operation store", func(ctx context.Context) error {
		return store.Close()
	})
	shutdownHandler.OnShutdown("http server", func(ctx context.Context) error {
		return httpServer.Shutdown(ctx)
	})

	// Watch the config file for log-level changes
	if *configFile != "" {
		if err := watchLogLevel(*configFile, log, shutdownHandler); err != nil {
			log.Warn("config watcher unavailable", "error", err)
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)

		var err error
		if cfg.Server.HTTP.TLSCertFile != "" && cfg.Server.HTTP.TLSKeyFile != "" {
			err = httpServer.ListenAndServeTLS(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			shutdownHandler.Trigger()
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger with redaction.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// watchLogLevel re-reads the config file on change and applies the log
// level without a restart.
func watchLogLevel(configFile string, log logger.Logger, sh *shutdown.Handler) error {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(log)))
	if err != nil {
		return err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return err
	}

	watcher.OnChange(func(string) {
		fresh := config.Default()
		loader := confloader.NewLoader(confloader.WithConfigFile(configFile))
		if err := loader.Load(fresh); err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		if fresh.Log.Level != logger.GetLevel() {
			logger.SetLevel(fresh.Log.Level)
			log.Info("log level changed", "level", fresh.Log.Level)
		}
	})
	watcher.StartAsync()

	sh.OnShutdown("config watcher", func(ctx context.Context) error {
		return watcher.Stop()
	})
	return nil
}
