package ethash

import (
	"encoding/binary"

	"github.com/TiimJiim/ethash.js/internal"
	"github.com/TiimJiim/ethash.js/internal/arith"
)

// runHash executes the hash pipeline for one (header, nonce) pair:
// seed the mix buffer, tile it across the working area, fold in
// mixNodeCount DAG-node lookups per outer iteration for mixParents
// iterations, then close with a double-Keccak-256 envelope. Every step is
// strictly sequential; mix/tempNode come from the Evaluator's pools, so a
// buffer is reused by later calls but never shared by concurrent ones.
func runHash(p Params, cache *Cache, rand1 uint32, h internal.KeccakHasher, pool *bufPool, header, nonce []byte) ([32]byte, error) {
	mixWordCount := p.MixWordCount()

	mix := pool.getMix()
	defer pool.putMix(mix)
	tempNode := pool.getTempNode()
	defer pool.putTempNode(tempNode)

	// Step 1: seed buffer (header || nonce, zero-padded to 64 bytes).
	var seedBytes [64]byte
	copy(seedBytes[0:32], header)
	copy(seedBytes[32:40], nonce)
	for i := 0; i < 16; i++ {
		mix[i] = binary.LittleEndian.Uint32(seedBytes[i*4:])
	}

	// Step 2: initial Keccak-512 of the seed region produces s.
	if err := h.DigestWords(mix, 0, 16, mix, 0, 16); err != nil {
		return [32]byte{}, err
	}

	// Step 3: tile s across the working area [16, mixWordCount+16).
	for w := 16; w < mixWordCount+16; w++ {
		mix[w] = mix[w%16]
	}

	// Step 4: seed the outer-mix BBS stream from s[0].
	rand2 := arith.Clamp(mix[0], arith.P2)

	dag := newDagOracle(p, cache, rand1)
	dagPageCount := uint32(p.DagPageCount())
	mixNodeCount := p.MixNodeCount()

	// Step 5: outer mix, mixParents rounds of DAG-page folding.
	for a := 0; a < p.MixParents; a++ {
		idx := a % mixWordCount
		d := int(mod32(mix[idx]^rand2, dagPageCount)) * mixNodeCount

		for n := 0; n < mixNodeCount; n++ {
			dag.node(uint64(d+n), tempNode)
			base := 16 + n*16
			for v := 0; v < 16; v++ {
				mix[base+v] = arith.Fnv(mix[base+v], tempNode[v])
			}
		}

		rand2 = arith.Step(rand2, arith.P2)
	}

	// Step 6: compress the whole mix into 8 words right after s.
	if err := h.DigestWords(mix, 16, 8, mix, 0, mixWordCount+16); err != nil {
		return [32]byte{}, err
	}

	// Step 7: final digest is Keccak-256(s || compressed_mix).
	var final [8]uint32
	if err := h.DigestWords(final[:], 0, 8, mix, 0, 24); err != nil {
		return [32]byte{}, err
	}

	var out [32]byte
	for i, w := range final {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out, nil
}
