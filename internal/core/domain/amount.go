// Package domain defines the core domain models for Soul Forge.
package domain

import (
	"math"
	"math/big"
)

// Decimals is the fixed precision for every token created by the forge.
// It is a protocol constant for this system, not user-configurable.
const Decimals = 9

// rawUnit is 10^Decimals.
var rawUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// maxRawAmount is the largest raw amount the mint instruction can carry
// losslessly (u64). Anything above must be rejected before any network
// call is made.
var maxRawAmount = new(big.Int).SetUint64(math.MaxUint64)

// MaxHumanSupply is the largest human-readable supply whose raw amount
// still fits in a u64: floor((2^64 - 1) / 10^9).
const MaxHumanSupply = "18446744073"

// ConvertSupply converts a human-readable supply string into the raw
// on-chain amount at Decimals precision.
//
// The conversion is exact: the string is parsed as an arbitrary-precision
// non-negative integer and multiplied by 10^Decimals with math/big. It
// fails with ErrInvalidSupply when the string is not purely numeric or is
// zero, and with ErrSupplyOverflow when the product does not fit in a
// u64. No floating point is involved at any step.
func ConvertSupply(humanSupply string) (uint64, error) {
	if !isDecimalString(humanSupply) {
		return 0, ErrInvalidSupply.WithDetails("supply must be a decimal integer string")
	}

	v, ok := new(big.Int).SetString(humanSupply, 10)
	if !ok {
		return 0, ErrInvalidSupply.WithDetails("supply does not parse as an integer")
	}
	if v.Sign() <= 0 {
		return 0, ErrInvalidSupply.WithDetails("supply must be strictly positive")
	}

	raw := new(big.Int).Mul(v, rawUnit)
	if raw.Cmp(maxRawAmount) > 0 {
		return 0, ErrSupplyOverflow.WithDetails("supply exceeds " + MaxHumanSupply + " whole tokens")
	}
	return raw.Uint64(), nil
}
