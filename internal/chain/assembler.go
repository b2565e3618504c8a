// Package chain builds the on-chain artifacts of a mint operation.
package chain

import (
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// MintAccountSize is the serialized size of an SPL mint account.
const MintAccountSize = token.MINT_SIZE

// MintParams carries everything needed to assemble one mint sequence.
type MintParams struct {
	// Mint is the new asset account address (the ephemeral identity's
	// public key).
	Mint solana.PublicKey

	// Owner is the external signer's public key. It pays for both
	// account creations and becomes the sole mint authority.
	Owner solana.PublicKey

	// Holding is the derived associated token account for (Owner, Mint).
	Holding solana.PublicKey

	// RentLamports is the rent-exempt minimum queried for MintAccountSize.
	RentLamports uint64

	// RawAmount is the initial supply in raw units.
	RawAmount uint64
}

// AssembleMintInstructions builds the four-instruction mint sequence,
// in this exact order:
//
//  1. SystemProgram.CreateAccount funds and allocates the mint account
//     at the rent-exempt minimum, owned by the token program.
//  2. Token.InitializeMint stamps it as a mint with domain.Decimals
//     precision, mint authority = owner, and no freeze authority.
//  3. AssociatedTokenAccount.Create allocates the holding account.
//  4. Token.MintTo issues the full supply into the holding account.
//
// The order is a hard correctness invariant: each instruction's
// preconditions are the previous one's postconditions. Assembly is pure
// data construction; a returned error means a programming bug, not a
// runtime condition.
func AssembleMintInstructions(p MintParams) ([]solana.Instruction, error) {
	createAccount, err := system.NewCreateAccountInstruction(
		p.RentLamports,
		MintAccountSize,
		token.ProgramID,
		p.Owner,
		p.Mint,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.ErrAssembly.WithDetails("create account").WithCause(err)
	}

	// Freeze authority is deliberately left unset: the forge grants no
	// freeze capability to anyone.
	initializeMint, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(domain.Decimals).
		SetMintAccount(p.Mint).
		SetMintAuthority(p.Owner).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, domain.ErrAssembly.WithDetails("initialize mint").WithCause(err)
	}

	createHolding, err := associatedtokenaccount.NewCreateInstruction(
		p.Owner,
		p.Owner,
		p.Mint,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.ErrAssembly.WithDetails("create holding account").WithCause(err)
	}

	issue, err := token.NewMintToInstruction(
		p.RawAmount,
		p.Mint,
		p.Holding,
		p.Owner,
		nil,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.ErrAssembly.WithDetails("mint to").WithCause(err)
	}

	return []solana.Instruction{createAccount, initializeMint, createHolding, issue}, nil
}
