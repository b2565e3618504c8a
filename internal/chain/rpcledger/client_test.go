// Package rpcledger implements the coordinator's Ledger port against a
// Solana JSON-RPC endpoint.
package rpcledger

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// TestMapSubmitError tests classification of send failures into the
// domain taxonomy.
func TestMapSubmitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "expired anchor",
			err:      errors.New("rpc: Transaction simulation failed: Blockhash not found"),
			wantCode: domain.ErrAnchorExpired.Code,
		},
		{
			name:     "underfunded payer",
			err:      errors.New("Transfer: insufficient lamports 100, need 1461600"),
			wantCode: domain.ErrInsufficientFunds.Code,
		},
		{
			name:     "payer never funded",
			err:      errors.New("Attempt to debit an account but found no record of a prior credit."),
			wantCode: domain.ErrInsufficientFunds.Code,
		},
		{
			name: "preflight rejection",
			err: &jsonrpc.RPCError{
				Code:    -32002,
				Message: "Transaction simulation failed: Error processing Instruction 1",
			},
			wantCode: domain.ErrSimulationFailed.Code,
		},
		{
			name:     "transport failure",
			err:      errors.New("dial tcp: connection refused"),
			wantCode: domain.ErrLedgerUnavailable.Code,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapSubmitError(tt.err)
			if !domain.IsDomainError(got, tt.wantCode) {
				t.Errorf("mapSubmitError(%v) = %v, want code %s", tt.err, got, tt.wantCode)
			}
			// The original error stays reachable for operators.
			if !errors.Is(got, tt.err) {
				t.Error("cause not preserved")
			}
		})
	}
}
