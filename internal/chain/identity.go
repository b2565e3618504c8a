// Package chain builds the on-chain artifacts of a mint operation.
package chain

import (
	"github.com/gagliardetto/solana-go"

	"github.com/twistedsoul/forge-go/internal/core/domain"
)

// AssetIdentity is the ephemeral keypair whose public key becomes the
// new mint account address.
//
// An identity is generated fresh per operation, co-signs exactly one
// transaction, and is discarded. It must never be persisted or logged;
// callers are expected to defer Zero() on every exit path.
type AssetIdentity struct {
	key solana.PrivateKey
}

// NewAssetIdentity generates a fresh, cryptographically random asset
// identity. Safe to call concurrently; no state is shared between calls.
func NewAssetIdentity() (*AssetIdentity, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, domain.ErrInternalServer.WithCause(err)
	}
	return &AssetIdentity{key: key}, nil
}

// PublicKey returns the mint account address.
func (a *AssetIdentity) PublicKey() solana.PublicKey {
	return a.key.PublicKey()
}

// SignMessage signs the serialized transaction message with the
// ephemeral private key.
func (a *AssetIdentity) SignMessage(msg []byte) (solana.Signature, error) {
	sig, err := a.key.Sign(msg)
	if err != nil {
		return solana.Signature{}, domain.ErrInternalServer.WithCause(err)
	}
	return sig, nil
}

// Zero scrubs the private key material. The identity is unusable
// afterwards. Safe to call more than once.
func (a *AssetIdentity) Zero() {
	for i := range a.key {
		a.key[i] = 0
	}
	a.key = nil
}
