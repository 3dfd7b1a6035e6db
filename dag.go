package ethash

import "github.com/TiimJiim/ethash.js/internal/arith"

// dagOracle derives any indexed 64-byte DAG node from the cache on
// demand. The DAG itself is never materialized: DAG nodes are never
// cached, so every hash-pipeline lookup recomputes its node from
// scratch through this oracle.
type dagOracle struct {
	cache      *Cache
	rand1      uint32
	dagParents int
}

func newDagOracle(p Params, c *Cache, rand1 uint32) *dagOracle {
	return &dagOracle{cache: c, rand1: rand1, dagParents: p.DagParents}
}

// node writes the 16-word DAG node at nodeIndex into out. out must be a
// 16-word buffer; the caller owns it (typically stack- or pool-allocated,
// never heap-allocated per call, see mem.go).
//
// rand2 is seeded via Advance so any nodeIndex is reachable in O(log^2
// nodeIndex) work without replaying every prior BBS step.
func (d *dagOracle) node(nodeIndex uint64, out []uint32) {
	rand2 := arith.Clamp(arith.Advance(d.rand1, nodeIndex, arith.P1), arith.P2)

	nodeCount := uint32(d.cache.NodeCount())
	copy(out, d.cache.node(int(nodeIndex%uint64(nodeCount))))

	for p := 0; p < d.dagParents; p++ {
		c := int(mod32(out[p%16]^rand2, nodeCount))
		cacheNode := d.cache.node(c)
		for w := 0; w < 16; w++ {
			out[w] = arith.Fnv(out[w], cacheNode[w])
		}
		rand2 = arith.Step(rand2, arith.P2)
	}
}

// mod32 is a plain unsigned modulo. It serves both DagPageCount (required
// to be a power of two) and cacheNodeCount (no such constraint), so it is
// a true modulo rather than an explicit AND mask.
func mod32(x, n uint32) uint32 {
	return x % n
}
