// Package domain defines the core domain models for Soul Forge.
package domain

import (
	"fmt"
	"strings"
)

// Manifest constraints.
const (
	MaxNameLength        = 64
	MaxSymbolLength      = 8
	MaxDescriptionLength = 1024
	MaxLinkLength        = 256
)

// PolicyFlags are the advisory launch bindings declared by the creator.
//
// These flags are recorded and echoed back as metadata only. Nothing in
// this system enforces them on-chain.
type PolicyFlags struct {
	// LockLiquidity declares that liquidity will be locked on creation.
	LockLiquidity bool `json:"lock_liquidity"`

	// RenounceMint declares that the mint authority will be renounced
	// after launch.
	RenounceMint bool `json:"renounce_mint"`

	// NoGodWallet declares that no oversized dev wallet will be held.
	NoGodWallet bool `json:"no_god_wallet"`

	// OpenSource declares that the factory logic is published.
	OpenSource bool `json:"open_source"`
}

// TokenManifest is the validated description of a token to create.
// It is treated as immutable input for one mint operation.
type TokenManifest struct {
	// Name is the display name of the token.
	Name string `json:"name"`

	// Symbol is the ticker symbol, at most 8 characters, uppercase.
	Symbol string `json:"symbol"`

	// HumanSupply is the human-readable total supply as a decimal
	// string. It must parse to a strictly positive integer.
	HumanSupply string `json:"supply"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Twitter, Telegram, and Website are optional social links.
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Website  string `json:"website,omitempty"`

	// Bindings are the advisory policy flags (metadata only).
	Bindings PolicyFlags `json:"bindings"`
}

// Normalize returns a copy with whitespace trimmed and the symbol
// uppercased. Call before Validate.
func (m TokenManifest) Normalize() TokenManifest {
	m.Name = strings.TrimSpace(m.Name)
	m.Symbol = strings.ToUpper(strings.TrimSpace(m.Symbol))
	m.HumanSupply = strings.TrimSpace(m.HumanSupply)
	m.Description = strings.TrimSpace(m.Description)
	m.Twitter = strings.TrimSpace(m.Twitter)
	m.Telegram = strings.TrimSpace(m.Telegram)
	m.Website = strings.TrimSpace(m.Website)
	return m
}

// Validate checks the manifest against the domain constraints.
// Supply validity (positivity and overflow) is checked by ConvertSupply;
// Validate only verifies that the field is present and numeric in form.
func (m *TokenManifest) Validate() error {
	if m.Name == "" {
		return ErrManifestInvalid.WithDetails("name is required")
	}
	if len(m.Name) > MaxNameLength {
		return ErrManifestInvalid.WithDetails(fmt.Sprintf("name exceeds %d characters", MaxNameLength))
	}
	if m.Symbol == "" {
		return ErrManifestInvalid.WithDetails("symbol is required")
	}
	if len(m.Symbol) > MaxSymbolLength {
		return ErrManifestInvalid.WithDetails(fmt.Sprintf("symbol exceeds %d characters", MaxSymbolLength))
	}
	if m.Symbol != strings.ToUpper(m.Symbol) {
		return ErrManifestInvalid.WithDetails("symbol must be uppercase")
	}
	if m.HumanSupply == "" {
		return ErrInvalidSupply.WithDetails("supply is required")
	}
	if !isDecimalString(m.HumanSupply) {
		return ErrInvalidSupply.WithDetails("supply must contain only decimal digits")
	}
	if len(m.Description) > MaxDescriptionLength {
		return ErrManifestInvalid.WithDetails(fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength))
	}
	for _, link := range []string{m.Twitter, m.Telegram, m.Website} {
		if len(link) > MaxLinkLength {
			return ErrManifestInvalid.WithDetails(fmt.Sprintf("link exceeds %d characters", MaxLinkLength))
		}
	}
	return nil
}

// isDecimalString reports whether s is non-empty and contains only the
// ASCII digits 0-9. Signs, spaces, and separators are all rejected.
func isDecimalString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
