package testvectors

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	suite, err := Load("testdata/vectors.json")
	require.NoError(t, err)
	require.NotEmpty(t, suite.Vectors)
	require.NotEmpty(t, suite.Version)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.json")
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.json"
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestVectorDecoding(t *testing.T) {
	suite, err := Load("testdata/vectors.json")
	require.NoError(t, err)

	byName := map[string]Vector{}
	for _, v := range suite.Vectors {
		byName[v.Name] = v
	}

	v, ok := byName["zero_seed_zero_header_zero_nonce"]
	require.True(t, ok)

	seed, err := v.Seed()
	require.NoError(t, err)
	require.Len(t, seed, 32)

	header, err := v.Header()
	require.NoError(t, err)
	require.Len(t, header, 32)

	nonce, err := v.Nonce()
	require.NoError(t, err)
	require.Len(t, nonce, 8)

	big, ok := byName["big_seed"]
	require.True(t, ok)
	bigSeed, err := big.Seed()
	require.NoError(t, err)
	require.Len(t, bigSeed, 64)
}

func TestVector_Expected_OmittedIsNil(t *testing.T) {
	v := Vector{}
	got, err := v.Expected()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestVector_Expected_WrongLength(t *testing.T) {
	v := Vector{ExpectedHex: "aabb"}
	_, err := v.Expected()
	require.Error(t, err)
}

func TestChecksumStable(t *testing.T) {
	c1, err := Checksum("testdata/vectors.json")
	require.NoError(t, err)
	c2, err := Checksum("testdata/vectors.json")
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}
