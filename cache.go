package ethash

import (
	"encoding/binary"

	"github.com/TiimJiim/ethash.js/internal"
	"github.com/TiimJiim/ethash.js/internal/arith"
)

// Cache holds the RandMemoHash-expanded seed the evaluator derives every
// DAG node from. It is built once by newCache and is read-only for the
// rest of its lifetime, safe to share behind a read-only reference
// across evaluators and goroutines.
type Cache struct {
	words     []uint32 // cacheSize/4 words, 16 per node
	nodeCount int
}

// node returns the 16-word node at index (mod NodeCount).
func (c *Cache) node(index int) []uint32 {
	i := index % c.nodeCount
	off := i * 16
	return c.words[off : off+16]
}

// NodeCount returns the number of 64-byte nodes in the cache.
func (c *Cache) NodeCount() int { return c.nodeCount }

// Digest returns Keccak-256 over the cache's entire byte image, in
// little-endian word order. Used for diagnostic equivalence checks
// between two caches built from the same (params, seed).
func (c *Cache) Digest() [32]byte {
	buf := make([]byte, len(c.words)*4)
	for i, w := range c.words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return internal.Keccak256Bytes(buf)
}

// release zeroes the cache's backing storage. Called by Evaluator.Close.
func (c *Cache) release() {
	for i := range c.words {
		c.words[i] = 0
	}
	c.words = nil
	c.nodeCount = 0
}

// newCache builds a Cache from a word-packed seed: Phase A sequentially
// chains Keccak-512 to fill every node from its predecessor, then Phase B
// runs cacheRounds passes of RandMemoHash over the whole cache in place.
//
// RandMemoHash here concatenates the two predecessor nodes into a 32-word
// join buffer before re-hashing, rather than XORing them into 16 words as
// the canonical Ethash spec does. This implementation is bit-compatible
// with itself, not with canonical Ethash.
func newCache(p Params, seedWords []uint32, h internal.KeccakHasher) (*Cache, error) {
	n := p.CacheNodeCount()
	words := make([]uint32, n*16)

	if err := h.DigestWords(words, 0, 16, seedWords, 0, len(seedWords)); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := h.DigestWords(words, i*16, 16, words, (i-1)*16, 16); err != nil {
			return nil, err
		}
	}

	join := make([]uint32, 32)
	for round := 0; round < p.CacheRounds; round++ {
		for node := 0; node < n; node++ {
			p0 := ((node - 1 + n) % n) * 16
			lo, hi := words[node*16], words[node*16+1]
			p1 := int(arith.Mod64(lo, hi, uint32(n))) * 16

			copy(join[0:16], words[p0:p0+16])
			copy(join[16:32], words[p1:p1+16])

			if err := h.DigestWords(words, node*16, 16, join, 0, 32); err != nil {
				return nil, err
			}
		}
	}

	return &Cache{words: words, nodeCount: n}, nil
}
