// Package storage persists mint operation records.
package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

func testOperation(t *testing.T) *domain.Operation {
	t.Helper()
	op, err := domain.NewOperation(domain.TokenManifest{
		Name:        "Test Soul",
		Symbol:      "SOUL",
		HumanSupply: "1000000000",
	}, 1_000_000_000_000_000_000)
	if err != nil {
		t.Fatalf("NewOperation failed: %v", err)
	}
	return op
}

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore(BadgerConfig{Dir: t.TempDir()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewBadgerStore failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

// TestBadgerStore_RoundTrip tests Put/Get of an operation record.
func TestBadgerStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	op := testOperation(t)
	op.MintAddress = "mint111"
	op.TransactionID = "tx111"
	op.Confirm()

	if err := store.Put(ctx, op); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, op.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != op.ID || got.Phase != domain.PhaseConfirmed || got.TransactionID != "tx111" {
		t.Errorf("got %+v", got)
	}
	if got.Manifest.Symbol != "SOUL" {
		t.Errorf("manifest symbol = %q", got.Manifest.Symbol)
	}
}

// TestBadgerStore_GetMissing tests the not-found path.
func TestBadgerStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "tsop-missing")
	if !domain.IsDomainError(err, domain.ErrOperationNotFound.Code) {
		t.Errorf("error = %v, want %s", err, domain.ErrOperationNotFound.Code)
	}
}

// TestBadgerStore_Overwrite tests that Put replaces prior state, as the
// coordinator updates the record per phase.
func TestBadgerStore_Overwrite(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	op := testOperation(t)
	if err := store.Put(ctx, op); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	op.Advance(domain.PhaseSubmitted)
	op.TransactionID = "tx222"
	if err := store.Put(ctx, op); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, err := store.Get(ctx, op.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Phase != domain.PhaseSubmitted || got.TransactionID != "tx222" {
		t.Errorf("got %+v", got)
	}
}

// TestBadgerStore_List tests limited listing.
func TestBadgerStore_List(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Put(ctx, testOperation(t)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	ops, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ops) != 3 {
		t.Errorf("len = %d, want 3", len(ops))
	}
}

// TestMemoryStore tests the in-memory variant.
func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	op := testOperation(t)
	if err := store.Put(ctx, op); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, op.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// Mutating the returned copy must not affect the stored record.
	got.Phase = domain.PhaseFailed
	again, _ := store.Get(ctx, op.ID)
	if again.Phase == domain.PhaseFailed {
		t.Error("store leaked a mutable reference")
	}

	if _, err := store.Get(ctx, "tsop-nope"); !domain.IsDomainError(err, domain.ErrOperationNotFound.Code) {
		t.Errorf("error = %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

// TestMemoryStore_List tests ordering and limit.
func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		op := testOperation(t)
		ids = append(ids, op.ID)
		if err := store.Put(ctx, op); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	ops, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("len = %d, want 2", len(ops))
	}
	// Newest first means the lexicographically largest ULID leads.
	want := ids[0]
	for _, id := range ids[1:] {
		if id > want {
			want = id
		}
	}
	if ops[0].ID != want {
		t.Errorf("first listed = %s, want %s", ops[0].ID, want)
	}
}
