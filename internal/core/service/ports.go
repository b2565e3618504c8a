// Package service provides the domain services for Soul Forge.
package service

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// Signer is the external signing capability (the connected wallet, or a
// server-held treasury key). The coordinator never sees the private key;
// it hands over serialized message bytes and receives a signature.
type Signer interface {
	// PublicKey returns the owner identity: fee payer and mint authority.
	PublicKey() solana.PublicKey

	// SignMessage signs the serialized transaction message. The call may
	// suspend on a human-timescale approval; it must honor ctx
	// cancellation. A declined request returns domain.ErrUserRejected.
	SignMessage(ctx context.Context, message []byte) (solana.Signature, error)
}

// TxState is the ledger-reported state of a submitted transaction.
type TxState string

// Transaction states. Note that the ledger's weaker "processed" level is
// reported as TxPending: only "confirmed" or better counts.
const (
	TxPending   TxState = "pending"
	TxConfirmed TxState = "confirmed"
	TxFailed    TxState = "failed"
)

// TxStatus is the result of one status query.
type TxStatus struct {
	State TxState

	// Code is the decoded on-chain error, set when State is TxFailed.
	Code string
}

// Ledger is the ledger endpoint capability consumed by the coordinator.
// Implementations translate transport failures into the domain error
// taxonomy; the coordinator performs no retries of its own.
type Ledger interface {
	// MinimumRentExemptBalance returns the minimum balance for an
	// account of the given byte size to be exempt from storage rent.
	// One network round trip; results must not be cached across
	// operations.
	MinimumRentExemptBalance(ctx context.Context, size uint64) (uint64, error)

	// RecentAnchor returns a fresh recent blockhash. Anchors have a
	// bounded validity window and are fetched once per build.
	RecentAnchor(ctx context.Context) (solana.Hash, error)

	// Submit sends the dual-signed transaction exactly once and returns
	// its identifier. A returned identifier does not imply finality.
	Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// Status reports the transaction's state at "confirmed" finality or
	// better.
	Status(ctx context.Context, txID solana.Signature) (TxStatus, error)
}

// OperationRepository is the storage interface for operation records.
type OperationRepository interface {
	// Put creates or replaces an operation record.
	Put(ctx context.Context, op *domain.Operation) error

	// Get retrieves an operation by ID, or domain.ErrOperationNotFound.
	Get(ctx context.Context, id string) (*domain.Operation, error)

	// List returns up to limit records, newest first. A non-positive
	// limit means no bound.
	List(ctx context.Context, limit int) ([]*domain.Operation, error)
}
