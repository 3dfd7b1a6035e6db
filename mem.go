package ethash

import "sync"

// bufPool holds per-Evaluator sync.Pools for the buffers a single Hash
// call needs: the MixState buffer and the tempNode scratch a dagOracle
// lookup writes into. These can't be package-level pools sized by a
// fixed constant, since buffer sizes are derived from the Evaluator's
// own Params, so each Evaluator owns its pool.
type bufPool struct {
	mix      sync.Pool // []uint32, len = mixWordCount+16
	tempNode sync.Pool // []uint32, len = 16
}

func newBufPool(mixWordCount int) *bufPool {
	bp := &bufPool{}
	bp.mix.New = func() interface{} {
		return make([]uint32, mixWordCount+16)
	}
	bp.tempNode.New = func() interface{} {
		return make([]uint32, 16)
	}
	return bp
}

func (bp *bufPool) getMix() []uint32 {
	return bp.mix.Get().([]uint32)
}

func (bp *bufPool) putMix(b []uint32) {
	zeroWords(b)
	bp.mix.Put(b)
}

func (bp *bufPool) getTempNode() []uint32 {
	return bp.tempNode.Get().([]uint32)
}

func (bp *bufPool) putTempNode(b []uint32) {
	zeroWords(b)
	bp.tempNode.Put(b)
}

// zeroWords clears a word slice: buffers are wiped before returning to
// the pool so state never leaks across unrelated Hash calls.
func zeroWords(b []uint32) {
	for i := range b {
		b[i] = 0
	}
}
