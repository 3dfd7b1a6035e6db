package internal

import (
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// KeccakHasher absorbs and squeezes a contiguous 32-bit little-endian word
// buffer into another word buffer. An output length of 8 words yields
// Keccak-256; 16 words yields Keccak-512. This is the external Keccak
// capability the ethash core is built against. It never touches the
// permutation itself.
type KeccakHasher interface {
	DigestWords(out []uint32, outOff, outLen int, in []uint32, inOff, inLen int) error
}

// keccakHasher implements KeccakHasher on top of golang.org/x/crypto/sha3's
// legacy (pre-NIST-padding) Keccak, which is what Ethash's Keccak-256 and
// Keccak-512 envelopes require.
type keccakHasher struct{}

// NewKeccakHasher returns the default KeccakHasher implementation.
func NewKeccakHasher() KeccakHasher {
	return keccakHasher{}
}

func (keccakHasher) DigestWords(out []uint32, outOff, outLen int, in []uint32, inOff, inLen int) error {
	var h hash.Hash
	switch outLen {
	case 8:
		h = sha3.NewLegacyKeccak256()
	case 16:
		h = sha3.NewLegacyKeccak512()
	default:
		return fmt.Errorf("internal: unsupported keccak output length %d words", outLen)
	}

	inBytes := make([]byte, inLen*4)
	for i := 0; i < inLen; i++ {
		binary.LittleEndian.PutUint32(inBytes[i*4:], in[inOff+i])
	}
	h.Write(inBytes)

	sum := h.Sum(nil)
	if len(sum) != outLen*4 {
		return fmt.Errorf("internal: keccak sum length mismatch: got %d, want %d", len(sum), outLen*4)
	}
	// The same slice may back both in and out; sum is a fresh allocation so
	// writing it back over in-place input is always safe.
	for i := 0; i < outLen; i++ {
		out[outOff+i] = binary.LittleEndian.Uint32(sum[i*4:])
	}
	return nil
}

// Keccak256Bytes hashes a raw byte string with Keccak-256, for callers
// outside the word-buffer pipeline (cache digests, CLI diagnostics).
func Keccak256Bytes(data []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}
