// Package signer provides Signer implementations for the mint
// coordinator.
package signer

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/twistedsoul/forge-go/internal/core/domain"
	"github.com/twistedsoul/forge-go/internal/core/service"
)

// Local signs with a keypair held by this process (the forge treasury
// wallet). It implements the external-signer capability for the
// server-side mint relay, where no human approval step exists.
type Local struct {
	key solana.PrivateKey
}

var _ service.Signer = (*Local)(nil)

// LoadLocal reads a Solana keygen JSON file (the `solana-keygen new`
// format) and returns a Local signer.
func LoadLocal(path string) (*Local, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, domain.ErrSignerUnavailable.WithDetails("load keypair file").WithCause(err)
	}
	return &Local{key: key}, nil
}

// NewLocal wraps an existing private key. Used by tests.
func NewLocal(key solana.PrivateKey) *Local {
	return &Local{key: key}
}

// PublicKey returns the treasury address (fee payer and mint authority).
func (l *Local) PublicKey() solana.PublicKey {
	return l.key.PublicKey()
}

// SignMessage signs the serialized transaction message. There is no
// approval prompt for a held key, but cancellation is still honored so
// an abandoned request does not produce a signature.
func (l *Local) SignMessage(ctx context.Context, message []byte) (solana.Signature, error) {
	if err := ctx.Err(); err != nil {
		return solana.Signature{}, domain.ErrUserRejected.WithDetails("request cancelled").WithCause(err)
	}
	sig, err := l.key.Sign(message)
	if err != nil {
		return solana.Signature{}, domain.ErrSignerUnavailable.WithCause(err)
	}
	return sig, nil
}
