// Package chain builds the on-chain artifacts of a mint operation.
package chain

import (
	"github.com/gagliardetto/solana-go"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// DeriveHoldingAddress derives the associated token account that will
// hold the initial supply for the owner.
//
// The derivation is a pure function of (owner, mint) under the
// associated-token program namespace: no network access, no randomness,
// and the same inputs always yield the same address, bit-exact across
// implementations. It fails with ErrDerivation only when the bump-seed
// search space is exhausted, which for practical purposes never happens
// and is treated as a programmer-facing fault.
func DeriveHoldingAddress(mint, owner solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, domain.ErrDerivation.WithCause(err)
	}
	return addr, nil
}
