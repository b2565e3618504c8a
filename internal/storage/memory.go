// Package storage persists mint operation records.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/core/service"
)

// MemoryStore is an in-memory OperationRepository for tests and
// single-shot tooling. Records are copied on the way in and out.
type MemoryStore struct {
	mu  sync.RWMutex
	ops map[string]domain.Operation
}

var _ service.OperationRepository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ops: make(map[string]domain.Operation)}
}

// Put creates or replaces an operation record.
func (s *MemoryStore) Put(ctx context.Context, op *domain.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[op.ID] = *op
	return nil
}

// Get retrieves an operation by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.ops[id]
	if !ok {
		return nil, domain.ErrOperationNotFound.WithDetails(id)
	}
	cp := op
	return &cp, nil
}

// List returns up to limit operation records, newest ID first. ULID
// identifiers sort lexicographically by creation time.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*domain.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.ops))
	for id := range s.ops {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	var ops []*domain.Operation
	for _, id := range ids {
		if limit > 0 && len(ops) >= limit {
			break
		}
		cp := s.ops[id]
		ops = append(ops, &cp)
	}
	return ops, nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ops)
}
