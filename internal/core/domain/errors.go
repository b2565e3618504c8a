// Package domain defines the core domain models for Soul Forge.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Error codes follow the format defined in docs/error-codes.md.
type DomainError struct {
	Code    string // Error code (e.g., "TS-SUP-1001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Input Errors (MAN, SUP)
// Detected before any network access; never retried; surfaced verbatim.
// ============================================================================

var (
	// ErrManifestInvalid indicates the token manifest failed validation.
	ErrManifestInvalid = NewDomainError("TS-MAN-1001", "invalid token manifest")

	// ErrInvalidSupply indicates the supply string is not a positive integer.
	ErrInvalidSupply = NewDomainError("TS-SUP-1001", "invalid supply")

	// ErrSupplyOverflow indicates the raw amount exceeds the lossless range
	// of the mint instruction (u64).
	ErrSupplyOverflow = NewDomainError("TS-SUP-1002", "supply overflow")
)

// ============================================================================
// Derivation Errors (DRV)
// Programmer-facing; an occurrence in production is an invariant violation.
// ============================================================================

var (
	// ErrDerivation indicates the deterministic address search space was
	// exhausted while deriving the holding account.
	ErrDerivation = NewDomainError("TS-DRV-5001", "holding address derivation failed")

	// ErrAssembly indicates instruction assembly failed. Instructions are
	// pure data construction, so this is always a programming error.
	ErrAssembly = NewDomainError("TS-DRV-5002", "instruction assembly failed")
)

// ============================================================================
// Ledger Errors (LGR)
// Surfaced with enough detail to distinguish "nothing happened" from
// "an asset may already have been created".
// ============================================================================

var (
	// ErrOracleUnavailable indicates the rent-exemption query failed.
	// Nothing was submitted; the attempt is over.
	ErrOracleUnavailable = NewDomainError("TS-LGR-5030", "rent oracle unavailable")

	// ErrLedgerUnavailable indicates a ledger endpoint transport failure.
	ErrLedgerUnavailable = NewDomainError("TS-LGR-5031", "ledger endpoint unavailable")

	// ErrAnchorExpired indicates the recent blockhash fell out of its
	// validity window before the transaction landed. Requires a full
	// rebuild with a fresh anchor, never a resubmit of the same bytes.
	ErrAnchorExpired = NewDomainError("TS-LGR-4080", "transaction anchor expired")

	// ErrInsufficientFunds indicates the fee payer cannot cover rent + fees.
	ErrInsufficientFunds = NewDomainError("TS-LGR-4020", "fee payer has insufficient funds")

	// ErrSimulationFailed indicates pre-flight simulation rejected the
	// transaction before submission. Nothing was submitted.
	ErrSimulationFailed = NewDomainError("TS-LGR-4000", "transaction simulation failed")

	// ErrConfirmationTimeout indicates the bounded confirmation wait ended
	// without a verdict. The transaction may still land; callers must
	// re-check by transaction id, never resubmit.
	ErrConfirmationTimeout = NewDomainError("TS-LGR-4081", "confirmation timed out")

	// ErrLedgerExecution indicates the ledger executed and rejected the
	// transaction. The decoded on-chain error is carried in Details.
	ErrLedgerExecution = NewDomainError("TS-LGR-5100", "on-chain execution failed")
)

// ============================================================================
// Signer Errors (SGN)
// ============================================================================

var (
	// ErrUserRejected indicates the external signer declined to sign.
	// This is a normal cancellation path, not a system fault.
	ErrUserRejected = NewDomainError("TS-SGN-4990", "signature request rejected")

	// ErrSignerUnavailable indicates the signer capability failed for a
	// reason other than an explicit rejection.
	ErrSignerUnavailable = NewDomainError("TS-SGN-5030", "signer unavailable")
)

// ============================================================================
// Operation Errors (OPS)
// ============================================================================

var (
	// ErrOperationNotFound indicates the requested operation record was not found.
	ErrOperationNotFound = NewDomainError("TS-OPS-4040", "operation not found")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("TS-SYS-5000", "internal server error")

	// ErrStorageError indicates an operation-store error.
	ErrStorageError = NewDomainError("TS-SYS-5001", "storage error")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("TS-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("TS-SYS-4290", "too many requests")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("TS-ARG-1002", "missing required argument")
)
