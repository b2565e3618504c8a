// Package storage persists mint operation records.
//
// The Badger-backed store keeps records across restarts so operations
// that ended in a confirmation timeout can still be re-checked by
// identifier. Records hold no key material. The in-memory store serves
// tests and single-shot tooling.
package storage
