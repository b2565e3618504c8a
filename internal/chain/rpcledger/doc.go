// Package rpcledger implements the coordinator's Ledger port against a
// Solana JSON-RPC endpoint.
//
// The client performs no retries and no caching: the rent-exempt
// minimum and the recent blockhash are fetched fresh for every
// operation, and endpoint failures are translated into the domain error
// taxonomy so the coordinator can tell "nothing happened" apart from
// "a transaction may have landed".
package rpcledger
