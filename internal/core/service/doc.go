// Package service provides the domain services for Soul Forge.
//
// MintService is the transaction coordinator: it drives one
// token-creation attempt from manifest to confirmed transaction,
// against injected Signer and Ledger capabilities, and records the
// externally observable lifecycle in the operation repository.
package service
