// Package ethash implements the core of an Ethash proof-of-work
// evaluator: given a seed, a 32-byte header hash, and an 8-byte nonce, it
// produces a 32-byte final digest by threading a Keccak-derived cache and
// an on-the-fly DAG of 64-byte nodes through a memory-hard mixing loop.
//
// The Keccak-f[1600] sponge itself, byte/word conversion at the seed
// boundary, epoch-scale seed derivation, and consensus-level difficulty
// checking are all external collaborators; this package only computes
// the digest.
//
// Example usage:
//
//	ev, err := ethash.New(ethash.MainnetParams(0), seed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ev.Close()
//
//	digest, err := ev.Hash(header, nonce)
package ethash

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/TiimJiim/ethash.js/internal"
	"github.com/TiimJiim/ethash.js/internal/arith"
)

// Evaluator computes Ethash digests against one immutable (Params, seed)
// pair. It is safe for concurrent use: Cache and rand1 are read-only
// after New returns, and each Hash call uses its own pooled scratch
// buffers.
type Evaluator struct {
	params Params
	cache  *Cache
	rand1  uint32
	keccak internal.KeccakHasher
	pool   *bufPool

	closed bool
	mu     sync.RWMutex // protects closed
}

// New builds an Evaluator: expands seed into a Cache via RandMemoHash
// and derives rand1 from cache[0]. This is the expensive,
// synchronous setup step (cache construction is O(cacheSize) work
// plus cacheRounds full passes over it).
func New(p Params, seed []byte) (*Evaluator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seedWords, err := packSeed(seed)
	if err != nil {
		return nil, err
	}

	keccak := internal.NewKeccakHasher()
	cache, err := newCache(p, seedWords, keccak)
	if err != nil {
		return nil, fmt.Errorf("ethash: cache construction: %w", err)
	}

	rand1 := arith.Clamp(cache.node(0)[0], arith.P1)

	return &Evaluator{
		params: p,
		cache:  cache,
		rand1:  rand1,
		keccak: keccak,
		pool:   newBufPool(p.MixWordCount()),
	}, nil
}

// packSeed converts a byte string into little-endian 32-bit words,
// failing with InvalidSeedError if the length isn't a multiple of 4.
func packSeed(seed []byte) ([]uint32, error) {
	if len(seed)%4 != 0 {
		return nil, &InvalidSeedError{Len: len(seed)}
	}
	words := make([]uint32, len(seed)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(seed[i*4:])
	}
	return words, nil
}

// Hash computes the Ethash digest of (header, nonce) against this
// Evaluator's cache. header must be exactly 32 bytes and nonce exactly 8
// bytes. Safe for concurrent use by multiple goroutines.
func (e *Evaluator) Hash(header, nonce []byte) ([32]byte, error) {
	if len(header) != 32 {
		return [32]byte{}, fmt.Errorf("ethash: header must be 32 bytes, got %d", len(header))
	}
	if len(nonce) != 8 {
		return [32]byte{}, fmt.Errorf("ethash: nonce must be 8 bytes, got %d", len(nonce))
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		panic("ethash: Hash called on closed evaluator")
	}

	return runHash(e.params, e.cache, e.rand1, e.keccak, e.pool, header, nonce)
}

// CacheDigest returns Keccak-256 over the evaluator's entire cache,
// for diagnostic equivalence checks between two evaluators built from
// equal (params, seed).
func (e *Evaluator) CacheDigest() [32]byte {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cache.Digest()
}

// Close releases the evaluator's cache. After Close, the evaluator must
// not be used.
func (e *Evaluator) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.cache.release()
	return nil
}

// IsReady returns true if the evaluator has not been closed.
func (e *Evaluator) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.closed
}
