// Package internal provides cryptographic primitives for the ethash core
// and its surrounding tooling. It wraps golang.org/x/crypto packages so
// the rest of the module never imports a hash implementation directly.
package internal

import "golang.org/x/crypto/blake2b"

// Blake2b256 computes a 256-bit Blake2b hash (32 bytes).
func Blake2b256(data []byte) [32]byte {
	h := blake2b.Sum256(data)
	return h
}
