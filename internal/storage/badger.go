// Package storage persists mint operation records.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/core/service"
)

// operationKeyPrefix namespaces operation records inside the DB.
const operationKeyPrefix = "op/"

// defaultGCInterval is how often value-log garbage collection runs.
const defaultGCInterval = 10 * time.Minute

// BadgerStore is a Badger-backed OperationRepository.
type BadgerStore struct {
	db     *badger.DB
	logger *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

var _ service.OperationRepository = (*BadgerStore)(nil)

// BadgerConfig holds store configuration.
type BadgerConfig struct {
	// Dir is the on-disk data directory.
	Dir string

	// SyncWrites forces fsync per write. Operation records are small and
	// matter for post-timeout lookups, so the default is on.
	SyncWrites bool

	// GCInterval overrides the value-log GC period. Zero means default.
	GCInterval time.Duration
}

// NewBadgerStore opens (or creates) the operation store.
func NewBadgerStore(cfg BadgerConfig, logger *slog.Logger) (*BadgerStore, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.GCInterval <= 0 {
		cfg.GCInterval = defaultGCInterval
	}

	opts := badger.DefaultOptions(cfg.Dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.SyncWrites = cfg.SyncWrites

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	s := &BadgerStore{
		db:     db,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go s.gcLoop(cfg.GCInterval)

	logger.Info("operation store opened", "dir", cfg.Dir)
	return s, nil
}

// Put creates or replaces an operation record.
func (s *BadgerStore) Put(ctx context.Context, op *domain.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return domain.ErrStorageError.WithDetails("encode operation").WithCause(err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(operationKey(op.ID), data)
	})
	if err != nil {
		return domain.ErrStorageError.WithCause(err)
	}
	return nil
}

// Get retrieves an operation by ID.
func (s *BadgerStore) Get(ctx context.Context, id string) (*domain.Operation, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(operationKey(id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrOperationNotFound.WithDetails(id)
		}
		return nil, domain.ErrStorageError.WithCause(err)
	}

	var op domain.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, domain.ErrStorageError.WithDetails("decode operation").WithCause(err)
	}
	return &op, nil
}

// List returns up to limit operation records, newest ID first.
func (s *BadgerStore) List(ctx context.Context, limit int) ([]*domain.Operation, error) {
	var ops []*domain.Operation
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(operationKeyPrefix)
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must seek past the prefix range first.
		seek := append([]byte(operationKeyPrefix), 0xff)
		for it.Seek(seek); it.Valid(); it.Next() {
			if limit > 0 && len(ops) >= limit {
				break
			}
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var op domain.Operation
			if err := json.Unmarshal(data, &op); err != nil {
				return err
			}
			ops = append(ops, &op)
		}
		return nil
	})
	if err != nil {
		return nil, domain.ErrStorageError.WithCause(err)
	}
	return ops, nil
}

// Close stops background GC and closes the DB.
func (s *BadgerStore) Close() error {
	close(s.stopCh)
	<-s.doneCh
	return s.db.Close()
}

// gcLoop runs periodic value-log garbage collection.
func (s *BadgerStore) gcLoop(interval time.Duration) {
	defer close(s.doneCh)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			// ErrNoRewrite is the normal "nothing to collect" outcome.
			if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				s.logger.Warn("value log GC failed", "error", err)
			}
		}
	}
}

func operationKey(id string) []byte {
	return []byte(operationKeyPrefix + id)
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
