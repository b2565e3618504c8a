// Package chain builds the on-chain artifacts of a mint operation:
// the ephemeral asset identity, the deterministic holding-account
// derivation, and the four-instruction mint sequence.
//
// Everything in this package is pure data construction. No function
// here performs network IO; ledger access lives in chain/rpcledger.
package chain
