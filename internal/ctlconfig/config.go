// Package ctlconfig loads ethash.Params overrides from a YAML file for
// the ethashctl command, using viper the way IceFireDB-SQLite and
// IceFireDB-SQLProxy load their own config files.
package ctlconfig

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/TiimJiim/ethash.js"
)

// fileParams mirrors ethash.Params field-for-field for YAML decoding.
type fileParams struct {
	CacheSize   int `mapstructure:"cache_size"`
	CacheRounds int `mapstructure:"cache_rounds"`
	DagSize     int `mapstructure:"dag_size"`
	DagParents  int `mapstructure:"dag_parents"`
	MixSize     int `mapstructure:"mix_size"`
	MixParents  int `mapstructure:"mix_parents"`
}

// LoadParams reads a YAML params file and validates it into an
// ethash.Params value.
func LoadParams(path string) (ethash.Params, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return ethash.Params{}, fmt.Errorf("ctlconfig: read %s: %w", path, err)
	}

	var fp fileParams
	if err := v.Unmarshal(&fp); err != nil {
		return ethash.Params{}, fmt.Errorf("ctlconfig: parse %s: %w", path, err)
	}

	p := ethash.Params{
		CacheSize:   fp.CacheSize,
		CacheRounds: fp.CacheRounds,
		DagSize:     fp.DagSize,
		DagParents:  fp.DagParents,
		MixSize:     fp.MixSize,
		MixParents:  fp.MixParents,
	}
	if err := p.Validate(); err != nil {
		return ethash.Params{}, fmt.Errorf("ctlconfig: %s: %w", path, err)
	}
	return p, nil
}
