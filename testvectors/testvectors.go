// Package testvectors loads the JSON conformance fixtures used to drive
// the ethash core's end-to-end scenario tests: tiny (params, seed,
// header, nonce) tuples small enough to hash in milliseconds, plus the
// structural relationships each scenario checks (nonce sensitivity,
// seed sensitivity, params scaling).
package testvectors

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/TiimJiim/ethash.js/internal"
)

// Params mirrors ethash.Params for JSON decoding without importing the
// root package (which would create an import cycle with its own tests).
type Params struct {
	CacheSize   int `json:"cache_size"`
	CacheRounds int `json:"cache_rounds"`
	DagSize     int `json:"dag_size"`
	DagParents  int `json:"dag_parents"`
	MixSize     int `json:"mix_size"`
	MixParents  int `json:"mix_parents"`
}

// Vector is a single fixture: a (params, seed, header, nonce) tuple and
// the hex-encoded expectations a conformance test checks it against.
// ExpectedHex and ExpectedCacheDigestHex are optional, omitted when a
// scenario checks a structural relationship (e.g. "two nonces differ")
// rather than a pinned byte value.
type Vector struct {
	Name                   string `json:"name"`
	Params                 Params `json:"params"`
	SeedHex                string `json:"seed_hex"`
	HeaderHex              string `json:"header_hex"`
	NonceHex               string `json:"nonce_hex"`
	ExpectedHex            string `json:"expected_hex,omitempty"`
	ExpectedCacheDigestHex string `json:"expected_cache_digest_hex,omitempty"`
}

// Suite is a versioned collection of Vectors.
type Suite struct {
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Vectors     []Vector `json:"vectors"`
}

// Load reads and parses a vector suite from a JSON file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testvectors: read %s: %w", path, err)
	}

	var suite Suite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("testvectors: parse %s: %w", path, err)
	}
	return &suite, nil
}

// Checksum returns the Blake2b-256 checksum of the raw vector file bytes,
// so callers can detect an accidentally edited fixture before trusting
// its pinned digests.
func Checksum(path string) ([32]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("testvectors: read %s: %w", path, err)
	}
	return internal.Blake2b256(data), nil
}

// Seed decodes the vector's hex-encoded seed.
func (v *Vector) Seed() ([]byte, error) { return decodeHex("seed_hex", v.SeedHex) }

// Header decodes the vector's hex-encoded header.
func (v *Vector) Header() ([]byte, error) { return decodeHex("header_hex", v.HeaderHex) }

// Nonce decodes the vector's hex-encoded nonce.
func (v *Vector) Nonce() ([]byte, error) { return decodeHex("nonce_hex", v.NonceHex) }

// Expected decodes the pinned expected digest, if present.
func (v *Vector) Expected() ([]byte, error) {
	if v.ExpectedHex == "" {
		return nil, nil
	}
	b, err := decodeHex("expected_hex", v.ExpectedHex)
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("testvectors: expected_hex must decode to 32 bytes, got %d", len(b))
	}
	return b, nil
}

func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("testvectors: invalid %s: %w", field, err)
	}
	return b, nil
}
