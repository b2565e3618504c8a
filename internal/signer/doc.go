// Package signer provides Signer implementations for the mint
// coordinator.
//
// The server deployment uses a treasury keypair loaded from a Solana
// keygen file at startup; browser-wallet signing happens outside this
// process and reaches the coordinator through the same interface.
package signer
