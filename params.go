package ethash

import "math/bits"

// Params is an immutable configuration for one Evaluator. Once passed to
// New, a Params value must not be mutated; the evaluator only reads it.
type Params struct {
	// CacheSize is the total cache footprint in bytes. Must be a
	// multiple of 64 and of MixSize.
	CacheSize int

	// CacheRounds is the number of RandMemoHash passes applied to the
	// cache during construction.
	CacheRounds int

	// DagSize is the virtual DAG footprint in bytes. The DAG is never
	// materialized; it must be a multiple of MixSize.
	DagSize int

	// DagParents is the number of FNV-mix iterations performed per
	// DAG-node derivation. Ethash mainnet uses 64.
	DagParents int

	// MixSize is the working mix width per evaluation, in bytes. Must
	// be a multiple of 64.
	MixSize int

	// MixParents is the number of outer mix iterations performed per
	// hash call.
	MixParents int
}

// CacheNodeCount returns CacheSize/64, the number of 16-word cache nodes.
func (p Params) CacheNodeCount() int { return p.CacheSize / 64 }

// MixWordCount returns MixSize/4, the number of 32-bit words in the
// working mix region (excluding the 16-word Keccak-512 seed).
func (p Params) MixWordCount() int { return p.MixSize / 4 }

// MixNodeCount returns MixWordCount/16, the number of 16-word DAG-node
// slabs a single outer mix iteration touches.
func (p Params) MixNodeCount() int { return p.MixWordCount() / 16 }

// DagPageCount returns DagSize/MixSize, the number of mask-addressable
// DAG pages.
func (p Params) DagPageCount() int { return p.DagSize / p.MixSize }

// Validate checks the invariants setup depends on: byte-alignment of
// every size field and that DagPageCount is a positive power of two (so
// the mod32-by-page-count in the hash pipeline can use a plain AND mask).
func (p Params) Validate() error {
	switch {
	case p.CacheSize <= 0 || p.CacheSize%64 != 0:
		return &InvalidParamsError{"CacheSize", p.CacheSize, "must be a positive multiple of 64"}
	case p.MixSize <= 0 || p.MixSize%64 != 0:
		return &InvalidParamsError{"MixSize", p.MixSize, "must be a positive multiple of 64"}
	case p.CacheSize%p.MixSize != 0:
		return &InvalidParamsError{"CacheSize", p.CacheSize, "must be a multiple of MixSize"}
	case p.DagSize <= 0 || p.DagSize%p.MixSize != 0:
		return &InvalidParamsError{"DagSize", p.DagSize, "must be a positive multiple of MixSize"}
	case p.CacheRounds < 0:
		return &InvalidParamsError{"CacheRounds", p.CacheRounds, "must be non-negative"}
	case p.DagParents <= 0:
		return &InvalidParamsError{"DagParents", p.DagParents, "must be positive"}
	case p.MixParents <= 0:
		return &InvalidParamsError{"MixParents", p.MixParents, "must be positive"}
	}
	if pages := p.DagPageCount(); pages <= 0 || pages&(pages-1) != 0 {
		return &InvalidParamsError{"DagPageCount", pages, "must be a positive power of two"}
	}
	return nil
}

// Canonical Ethash mainnet sizing constants (see the reference
// specification's get_cache_size/get_full_size).
const (
	cacheBytesInit     = 1 << 24
	cacheBytesGrowth   = 1 << 17
	datasetBytesInit   = 1 << 30
	datasetBytesGrowth = 1 << 23
	mixBytesMainnet    = 128
	hashBytesMainnet   = 64
)

// MainnetParams returns Ethash mainnet-scale Params for the given epoch
// (block_number / 30000). CacheSize follows the shape of the canonical
// prime-probed growth (get_cache_size), but probes in MixSize units
// rather than 64-byte units: it is shrunk from the epoch's linear target
// down to the nearest size whose (size/MixSize) is prime, so it stays a
// multiple of both 64 and MixSize as Validate requires. Its values
// therefore differ from canonical Ethash cache sizes. DagSize instead rounds its linear
// target down to the nearest power-of-two page count, since this core
// requires DagPageCount to be a power of two for its AND-mask page
// selection. Canonical Ethash's own prime-probed dataset size does not
// have that property, so it is not reproduced here.
func MainnetParams(epoch int) Params {
	cacheSize := cacheBytesInit + cacheBytesGrowth*epoch - mixBytesMainnet
	for !isPrime(cacheSize / mixBytesMainnet) {
		cacheSize -= 2 * mixBytesMainnet
	}

	dagSizeTarget := datasetBytesInit + datasetBytesGrowth*epoch
	pages := dagSizeTarget / mixBytesMainnet
	pow2Pages := 1 << bits.Len(uint(pages/2))
	dagSize := pow2Pages * mixBytesMainnet

	return Params{
		CacheSize:   cacheSize,
		CacheRounds: 3,
		DagSize:     dagSize,
		DagParents:  64,
		MixSize:     mixBytesMainnet,
		MixParents:  64,
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
