// Package chain builds the on-chain artifacts of a mint operation.
package chain

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

func testParams(t *testing.T) MintParams {
	t.Helper()

	asset, err := NewAssetIdentity()
	if err != nil {
		t.Fatalf("NewAssetIdentity failed: %v", err)
	}
	t.Cleanup(asset.Zero)

	owner := solana.NewWallet().PublicKey()
	holding, err := DeriveHoldingAddress(asset.PublicKey(), owner)
	if err != nil {
		t.Fatalf("DeriveHoldingAddress failed: %v", err)
	}

	return MintParams{
		Mint:         asset.PublicKey(),
		Owner:        owner,
		Holding:      holding,
		RentLamports: 1_461_600,
		RawAmount:    1_000_000_000_000_000_000,
	}
}

// expectedProgramSequence is the invariant program order of the mint
// sequence: system, token, associated-token, token.
var expectedProgramSequence = []solana.PublicKey{
	system.ProgramID,
	token.ProgramID,
	solana.SPLAssociatedTokenAccountProgramID,
	token.ProgramID,
}

// verifyMintSequence checks the structural invariant of an assembled
// instruction list: exactly four instructions, owned by the expected
// programs, in the expected order.
func verifyMintSequence(instrs []solana.Instruction) bool {
	if len(instrs) != len(expectedProgramSequence) {
		return false
	}
	for i, ix := range instrs {
		if !ix.ProgramID().Equals(expectedProgramSequence[i]) {
			return false
		}
	}
	return true
}

// TestAssembleMintInstructions_Order tests the fixed four-instruction
// order invariant.
func TestAssembleMintInstructions_Order(t *testing.T) {
	instrs, err := AssembleMintInstructions(testParams(t))
	if err != nil {
		t.Fatalf("AssembleMintInstructions failed: %v", err)
	}

	if len(instrs) != 4 {
		t.Fatalf("instruction count = %d, want 4", len(instrs))
	}
	if !verifyMintSequence(instrs) {
		for i, ix := range instrs {
			t.Logf("instr %d: program %s", i, ix.ProgramID())
		}
		t.Fatal("assembled sequence violates program-order invariant")
	}

	// Any pairwise reordering must be rejected by the structural check.
	for i := 0; i < len(instrs); i++ {
		for j := i + 1; j < len(instrs); j++ {
			swapped := make([]solana.Instruction, len(instrs))
			copy(swapped, instrs)
			swapped[i], swapped[j] = swapped[j], swapped[i]
			if verifyMintSequence(swapped) && !instrs[i].ProgramID().Equals(instrs[j].ProgramID()) {
				t.Errorf("swap(%d,%d) not detected", i, j)
			}
		}
	}
}

// TestAssembleMintInstructions_Accounts tests that each instruction is
// wired to the right accounts and payer.
func TestAssembleMintInstructions_Accounts(t *testing.T) {
	p := testParams(t)
	instrs, err := AssembleMintInstructions(p)
	if err != nil {
		t.Fatalf("AssembleMintInstructions failed: %v", err)
	}

	t.Run("create account funds the mint from the owner", func(t *testing.T) {
		accs := instrs[0].Accounts()
		if len(accs) != 2 {
			t.Fatalf("account count = %d", len(accs))
		}
		if !accs[0].PublicKey.Equals(p.Owner) {
			t.Errorf("funder = %s, want owner", accs[0].PublicKey)
		}
		if !accs[1].PublicKey.Equals(p.Mint) {
			t.Errorf("new account = %s, want mint", accs[1].PublicKey)
		}
		if !accs[1].IsSigner {
			t.Error("mint account must co-sign its own creation")
		}
	})

	t.Run("initialize mint targets the mint account", func(t *testing.T) {
		accs := instrs[1].Accounts()
		if len(accs) == 0 || !accs[0].PublicKey.Equals(p.Mint) {
			t.Errorf("initialize mint accounts = %v", accs)
		}
	})

	t.Run("issue mints into the derived holding account", func(t *testing.T) {
		accs := instrs[3].Accounts()
		if len(accs) < 3 {
			t.Fatalf("account count = %d", len(accs))
		}
		if !accs[0].PublicKey.Equals(p.Mint) {
			t.Errorf("mint = %s", accs[0].PublicKey)
		}
		if !accs[1].PublicKey.Equals(p.Holding) {
			t.Errorf("destination = %s, want holding", accs[1].PublicKey)
		}
		if !accs[2].PublicKey.Equals(p.Owner) {
			t.Errorf("authority = %s, want owner", accs[2].PublicKey)
		}
	})
}

// TestAssembleMintInstructions_IssueAmount tests that the raw amount is
// carried into the MintTo data verbatim.
func TestAssembleMintInstructions_IssueAmount(t *testing.T) {
	p := testParams(t)
	instrs, err := AssembleMintInstructions(p)
	if err != nil {
		t.Fatalf("AssembleMintInstructions failed: %v", err)
	}

	data, err := instrs[3].Data()
	if err != nil {
		t.Fatalf("Data() failed: %v", err)
	}
	// MintTo layout: 1-byte discriminant, then the u64 amount (LE).
	if len(data) != 9 {
		t.Fatalf("data length = %d, want 9", len(data))
	}
	var amount uint64
	for i := 0; i < 8; i++ {
		amount |= uint64(data[1+i]) << (8 * i)
	}
	if amount != p.RawAmount {
		t.Errorf("encoded amount = %d, want %d", amount, p.RawAmount)
	}
}
