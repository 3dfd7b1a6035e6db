package ctlconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/params.yaml"
	yaml := "cache_size: 1024\ncache_rounds: 2\ndag_size: 2048\ndag_parents: 4\nmix_size: 128\nmix_parents: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	p, err := LoadParams(path)
	require.NoError(t, err)
	require.Equal(t, 1024, p.CacheSize)
	require.Equal(t, 2, p.CacheRounds)
	require.Equal(t, 2048, p.DagSize)
	require.Equal(t, 4, p.DagParents)
	require.Equal(t, 128, p.MixSize)
	require.Equal(t, 3, p.MixParents)
}

func TestLoadParams_FileNotFound(t *testing.T) {
	_, err := LoadParams("testdata/nonexistent.yaml")
	require.Error(t, err)
}

func TestLoadParams_InvalidParams(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/params.yaml"
	yaml := "cache_size: 100\ncache_rounds: 2\ndag_size: 2048\ndag_parents: 4\nmix_size: 128\nmix_parents: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadParams(path)
	require.Error(t, err)
}
