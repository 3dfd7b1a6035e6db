package ethash

import "fmt"

// InvalidSeedError reports a seed byte string that cannot be packed into
// 32-bit little-endian words (its length is not a multiple of 4).
type InvalidSeedError struct {
	Len int
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("ethash: invalid seed: length %d is not a multiple of 4", e.Len)
}

// InvalidParamsError reports a Params value that fails setup validation.
type InvalidParamsError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("ethash: invalid params: %s=%d: %s", e.Field, e.Value, e.Reason)
}
