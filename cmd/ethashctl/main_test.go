package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// testContext builds a *cli.Context carrying the given string and int
// flag values, standing in for the flags urfave/cli would have parsed
// off the command line.
func testContext(t *testing.T, strs map[string]string, ints map[string]int) *cli.Context {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	for name, val := range strs {
		fs.String(name, "", "")
		require.NoError(t, fs.Set(name, val))
	}
	for name, val := range ints {
		fs.Int(name, 0, "")
		require.NoError(t, fs.Set(name, strconv.Itoa(val)))
	}
	return cli.NewContext(nil, fs, nil)
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	fn()
	os.Stdout = orig
	require.NoError(t, w.Close())
	out := make([]byte, 4096)
	n, _ := r.Read(out)
	return string(out[:n])
}

// tinyParamsFile writes a params YAML small enough to hash in the time a
// unit test can afford, and returns its path.
func tinyParamsFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	yaml := "cache_size: 1024\ncache_rounds: 2\ndag_size: 2048\ndag_parents: 4\nmix_size: 128\nmix_parents: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestRunHash(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	c := testContext(t, map[string]string{
		"seed":   "0102030405060708",
		"header": "0000000000000000000000000000000000000000000000000000000000000000",
		"nonce":  "0000000000000000",
		"config": tinyParamsFile(t),
	}, map[string]int{"epoch": 0})

	out := captureStdout(t, func() {
		require.NoError(t, runHash(sugar, c))
	})
	require.Len(t, out, 65) // 64 hex chars plus trailing newline
}

func TestRunCacheDigest(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	c := testContext(t, map[string]string{
		"seed":   "0102030405060708",
		"config": tinyParamsFile(t),
	}, map[string]int{"epoch": 0})

	out := captureStdout(t, func() {
		require.NoError(t, runCacheDigest(sugar, c))
	})
	require.Len(t, out, 65)
}

func TestRunBench(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	c := testContext(t, map[string]string{
		"seed":   "0102030405060708",
		"config": tinyParamsFile(t),
	}, map[string]int{"epoch": 0, "count": 4})

	out := captureStdout(t, func() {
		require.NoError(t, runBench(sugar, c))
	})
	require.Contains(t, out, "H/s")
}

func TestRunHash_BadSeedHex(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	c := testContext(t, map[string]string{
		"seed":   "not-hex",
		"header": "00",
		"nonce":  "00",
		"config": tinyParamsFile(t),
	}, map[string]int{"epoch": 0})

	require.Error(t, runHash(sugar, c))
}

func TestLoadParams_FromConfigFile(t *testing.T) {
	c := testContext(t, map[string]string{"config": tinyParamsFile(t)}, map[string]int{"epoch": 0})
	p, err := loadParams(c)
	require.NoError(t, err)
	require.Equal(t, 1024, p.CacheSize)
}

func TestLoadParams_FallsBackToMainnetEpoch(t *testing.T) {
	c := testContext(t, map[string]string{"config": ""}, map[string]int{"epoch": 0})
	p, err := loadParams(c)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}
