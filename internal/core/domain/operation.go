// Package domain defines the core domain models for Soul Forge.
package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// OperationIDPrefix is the prefix for mint operation IDs.
const OperationIDPrefix = "tsop-"

// Phase is the coordinator-facing lifecycle phase of a mint operation.
type Phase string

// Operation phases, in order. Confirmed and Failed are terminal; every
// failure is terminal for the attempt and is never retried inside the
// coordinator.
const (
	PhaseBuilt             Phase = "built"
	PhaseAwaitingSignature Phase = "awaiting_signature"
	PhaseSubmitted         Phase = "submitted"
	PhaseConfirmed         Phase = "confirmed"
	PhaseFailed            Phase = "failed"
)

// Operation is the persistent record of one token-creation attempt.
//
// The record never holds key material: the ephemeral mint keypair lives
// only inside the coordinator for the duration of the attempt.
type Operation struct {
	// ID is the unique operation identifier.
	// Format: tsop-{ulid_lowercase}, 31 characters total.
	ID string `json:"id"`

	// Manifest is the validated token manifest, echoed for the caller.
	Manifest TokenManifest `json:"manifest"`

	// RawAmount is the converted on-chain supply.
	RawAmount uint64 `json:"raw_amount"`

	// Phase is the current lifecycle phase.
	Phase Phase `json:"phase"`

	// MintAddress is the new asset account address (base58), set once the
	// transaction is built.
	MintAddress string `json:"mint_address,omitempty"`

	// HoldingAddress is the derived holding (associated token) account
	// address (base58).
	HoldingAddress string `json:"holding_address,omitempty"`

	// TransactionID is the ledger transaction signature (base58). It is
	// preserved on timeout so callers can re-check instead of resubmit.
	TransactionID string `json:"transaction_id,omitempty"`

	// ErrorCode and ErrorMessage describe the terminal failure, if any.
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	// CreatedAt and UpdatedAt are Unix millisecond timestamps.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewOperation creates a new Operation in PhaseBuilt for the given
// manifest and converted raw amount.
func NewOperation(manifest TokenManifest, rawAmount uint64) (*Operation, error) {
	id, err := GenerateOperationID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	return &Operation{
		ID:        id,
		Manifest:  manifest,
		RawAmount: rawAmount,
		Phase:     PhaseBuilt,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GenerateOperationID generates a new operation ID using ULID.
// Format: tsop-{ulid_lowercase}, 31 characters total.
func GenerateOperationID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternalServer.WithCause(err)
	}
	return OperationIDPrefix + strings.ToLower(id.String()), nil
}

// Advance moves the operation to the given phase.
func (o *Operation) Advance(phase Phase) {
	o.Phase = phase
	o.UpdatedAt = time.Now().UnixMilli()
}

// Fail marks the operation as terminally failed with the given error.
func (o *Operation) Fail(err error) {
	o.Phase = PhaseFailed
	o.ErrorCode = GetErrorCode(err)
	if err != nil {
		o.ErrorMessage = err.Error()
	}
	o.UpdatedAt = time.Now().UnixMilli()
}

// Confirm marks the operation as confirmed.
func (o *Operation) Confirm() {
	o.Phase = PhaseConfirmed
	o.UpdatedAt = time.Now().UnixMilli()
}

// IsTerminal reports whether the operation reached a terminal phase.
func (o *Operation) IsTerminal() bool {
	return o.Phase == PhaseConfirmed || o.Phase == PhaseFailed
}

// ============================================================================
// UI-facing projection
// ============================================================================

// ViewState is the externally observable state of an operation. It is a
// read-only 1:1 projection of the coordinator lifecycle; no logic beyond
// mapping is added here.
type ViewState string

// View states.
const (
	ViewIdle    ViewState = "idle"
	ViewPending ViewState = "pending"
	ViewSuccess ViewState = "success"
	ViewError   ViewState = "error"
)

// View is the read-only projection consumed by UI layers.
type View struct {
	State          ViewState `json:"state"`
	Message        string    `json:"message,omitempty"`
	MintAddress    string    `json:"mint_address,omitempty"`
	HoldingAddress string    `json:"holding_address,omitempty"`
	TransactionID  string    `json:"transaction_id,omitempty"`
	ErrorCode      string    `json:"error_code,omitempty"`
}

// pendingMessages mirrors the live status feed of the launchpad UI.
var pendingMessages = map[Phase]string{
	PhaseBuilt:             "building mint transaction",
	PhaseAwaitingSignature: "awaiting wallet signature",
	PhaseSubmitted:         "waiting for final confirmation",
}

// View returns the UI-facing projection of the operation.
func (o *Operation) View() View {
	if o == nil {
		return View{State: ViewIdle}
	}
	switch o.Phase {
	case PhaseConfirmed:
		return View{
			State:          ViewSuccess,
			MintAddress:    o.MintAddress,
			HoldingAddress: o.HoldingAddress,
			TransactionID:  o.TransactionID,
		}
	case PhaseFailed:
		return View{
			State:         ViewError,
			Message:       o.ErrorMessage,
			ErrorCode:     o.ErrorCode,
			TransactionID: o.TransactionID,
		}
	default:
		return View{
			State:   ViewPending,
			Message: pendingMessages[o.Phase],
		}
	}
}
