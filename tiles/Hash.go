package tiles

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// seedTableSize is the number of pseudo-random values in the hash
// seed table. Table addresses are reduced modulo this size.
const seedTableSize = 2048

// seedTableSeed fixes the stream used to fill the seed table so that
// hashed indices are reproducible across processes
const seedTableSeed uint64 = 1013904223

// seedTable is the process-wide table of pseudo-random values backing
// Hash. It is filled once, before first use, and never written again,
// so Hash needs no synchronization.
var seedTable [seedTableSize]uint32

func init() {
	rng := rand.New(rand.NewSource(seedTableSeed))
	for i := range seedTable {
		var v uint32
		for b := 0; b < 4; b++ {
			v = (v << 8) | (rng.Uint32() & 0xff)
		}
		seedTable[i] = v
	}
}

// Hash folds an integer coordinate tuple into a single index in
// [0, m). For each coordinate, a pseudo-random value is looked up in
// the seed table at an address derived from the coordinate, its
// position in the tuple, and increment; the looked-up values are
// accumulated and the sum reduced modulo m. Tuples differing in any
// single element therefore produce uncorrelated indices, and the
// output is near-uniform over [0, m) for any positive m, power of two
// or not.
//
// Distinct increments select effectively independent sub-tables, so a
// single seed table can serve several unrelated hash channels. Hash
// is a pure function of its arguments and is safe for concurrent use.
//
// Hash panics if m < 1 or if len(coords) > MaxNumCoords.
func Hash(coords []int, m, increment int) int {
	if m < 1 {
		panic(fmt.Sprintf("hash: range size must be positive: %d", m))
	}
	if len(coords) > MaxNumCoords {
		panic(fmt.Sprintf("hash: too many coordinates: "+
			"\n\thave(%d) \n\twant at most (%d)", len(coords), MaxNumCoords))
	}

	var sum int64
	for i, c := range coords {
		index := (c + increment*i) % seedTableSize
		if index < 0 {
			index += seedTableSize
		}
		sum += int64(seedTable[index])
	}

	index := int(sum % int64(m))
	if index < 0 {
		index += m
	}
	return index
}
