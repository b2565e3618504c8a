// Package domain defines the core domain models for Soul Forge.
package domain

import (
	"math/big"
	"testing"
)

// TestConvertSupply_Exact tests exact conversion against a reference
// big-integer calculation.
func TestConvertSupply_Exact(t *testing.T) {
	tests := []struct {
		name   string
		supply string
		want   uint64
	}{
		{"one", "1", 1_000_000_000},
		{"launchpad default", "1000000000", 1_000_000_000_000_000_000},
		{"max supply", MaxHumanSupply, 18_446_744_073_000_000_000},
		{"leading zeros", "0042", 42_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertSupply(tt.supply)
			if err != nil {
				t.Fatalf("ConvertSupply(%q) failed: %v", tt.supply, err)
			}
			if got != tt.want {
				t.Errorf("ConvertSupply(%q) = %d, want %d", tt.supply, got, tt.want)
			}

			// Cross-check against an independent big.Int computation.
			ref, _ := new(big.Int).SetString(tt.supply, 10)
			ref.Mul(ref, big.NewInt(1_000_000_000))
			if ref.Uint64() != got {
				t.Errorf("reference mismatch: %s vs %d", ref, got)
			}
		})
	}
}

// TestConvertSupply_Invalid tests rejection of non-positive and
// non-numeric supply strings.
func TestConvertSupply_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		supply string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"all zeros", "000"},
		{"negative", "-5"},
		{"plus sign", "+5"},
		{"alpha", "abc"},
		{"decimal point", "1.5"},
		{"whitespace", " 10"},
		{"underscore", "1_000"},
		{"hex", "0x10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertSupply(tt.supply)
			if !IsDomainError(err, ErrInvalidSupply.Code) {
				t.Errorf("ConvertSupply(%q) error = %v, want %s", tt.supply, err, ErrInvalidSupply.Code)
			}
		})
	}
}

// TestConvertSupply_OverflowBoundary tests the u64 boundary exactly at
// the limit and one unit above.
func TestConvertSupply_OverflowBoundary(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		got, err := ConvertSupply("18446744073")
		if err != nil {
			t.Fatalf("at-limit supply rejected: %v", err)
		}
		if got != 18_446_744_073_000_000_000 {
			t.Errorf("got %d", got)
		}
	})

	t.Run("one above limit", func(t *testing.T) {
		_, err := ConvertSupply("18446744074")
		if !IsDomainError(err, ErrSupplyOverflow.Code) {
			t.Errorf("error = %v, want %s", err, ErrSupplyOverflow.Code)
		}
	})

	t.Run("absurdly large", func(t *testing.T) {
		_, err := ConvertSupply("99999999999999999999999999999999")
		if !IsDomainError(err, ErrSupplyOverflow.Code) {
			t.Errorf("error = %v, want %s", err, ErrSupplyOverflow.Code)
		}
	})
}
