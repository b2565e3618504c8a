// Package rpcledger implements the coordinator's Ledger port against a
// Solana JSON-RPC endpoint.
package rpcledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/core/service"
)

// Client is a Ledger backed by a Solana RPC endpoint.
type Client struct {
	rpc *rpc.Client
}

// New creates a ledger client for the given RPC endpoint URL.
func New(endpoint string) *Client {
	return &Client{rpc: rpc.New(endpoint)}
}

var _ service.Ledger = (*Client)(nil)

// MinimumRentExemptBalance queries the rent-exempt minimum for an
// account of the given byte size. One round trip, never cached.
func (c *Client) MinimumRentExemptBalance(ctx context.Context, size uint64) (uint64, error) {
	lamports, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, size, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, domain.ErrOracleUnavailable.WithCause(err)
	}
	return lamports, nil
}

// RecentAnchor fetches a fresh recent blockhash.
func (c *Client) RecentAnchor(ctx context.Context) (solana.Hash, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Hash{}, domain.ErrLedgerUnavailable.WithDetails("blockhash fetch").WithCause(err)
	}
	if out == nil || out.Value == nil {
		return solana.Hash{}, domain.ErrLedgerUnavailable.WithDetails("empty blockhash response")
	}
	return out.Value.Blockhash, nil
}

// Submit sends the signed transaction exactly once. Preflight simulation
// stays enabled so most rejections happen before anything lands, and RPC
// node retransmission is disabled: retry is caller policy, and a retried
// attempt must start from a fresh asset identity.
func (c *Client) Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	noRetries := uint(0)
	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
		MaxRetries:          &noRetries,
	})
	if err != nil {
		return solana.Signature{}, mapSubmitError(err)
	}
	return sig, nil
}

// Status reports transaction state at "confirmed" finality or better.
// The weaker "processed" level is reported as pending.
func (c *Client) Status(ctx context.Context, txID solana.Signature) (service.TxStatus, error) {
	out, err := c.rpc.GetSignatureStatuses(ctx, true, txID)
	if err != nil {
		return service.TxStatus{}, domain.ErrLedgerUnavailable.WithDetails("status query").WithCause(err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		// Unknown to the cluster yet; still within the anchor window.
		return service.TxStatus{State: service.TxPending}, nil
	}

	st := out.Value[0]
	if st.Err != nil {
		return service.TxStatus{
			State: service.TxFailed,
			Code:  fmt.Sprintf("%v", st.Err),
		}, nil
	}
	switch st.ConfirmationStatus {
	case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
		return service.TxStatus{State: service.TxConfirmed}, nil
	default:
		return service.TxStatus{State: service.TxPending}, nil
	}
}

// mapSubmitError translates a send failure into the domain taxonomy.
//
// The RPC surface reports preflight failures as JSON-RPC errors whose
// message carries the simulation verdict, so classification is by
// message content. Unrecognized failures map to ErrLedgerUnavailable,
// which callers must treat as "submission state unknown".
func mapSubmitError(err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "Blockhash not found"):
		return domain.ErrAnchorExpired.WithCause(err)
	case strings.Contains(msg, "insufficient lamports"),
		strings.Contains(msg, "insufficient funds"),
		strings.Contains(msg, "found no record of a prior credit"):
		return domain.ErrInsufficientFunds.WithCause(err)
	}

	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		// -32002: transaction simulation failed during preflight.
		// Nothing was submitted.
		if rpcErr.Code == -32002 || strings.Contains(rpcErr.Message, "simulation failed") {
			return domain.ErrSimulationFailed.WithDetails(rpcErr.Message).WithCause(err)
		}
	}

	return domain.ErrLedgerUnavailable.WithDetails("send transaction").WithCause(err)
}
