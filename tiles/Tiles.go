// Package tiles implements hashed tile coding of continuous state
// vectors. Tile coding takes a low-dimensional, continuous vector and
// represents it as a small set of active tile indices drawn from a
// bounded memory. Multiple overlapping tilings, each offset from the
// others by a fraction of a tile width, cover the input space so that
// nearby inputs activate overlapping but not identical index sets.
// Because the memory is bounded, distinct tiles may collide; the
// universal hash in this package keeps those collisions uncorrelated
// with input structure.
package tiles

import (
	"fmt"
	"math"
)

const (
	// MaxNumVars is the maximum number of floating point variables
	// that may be tile coded at once
	MaxNumVars = 20

	// MaxNumCoords is the maximum number of integer coordinates that
	// may be folded into a single hashed index. Tile coding a state
	// vector uses one coordinate per float, one per int, and one for
	// the tiling number.
	MaxNumCoords = 100
)

// tilingIncrement selects the seed sub-table used when hashing tile
// coordinates, keeping tile hashing independent of any other use of
// Hash in the same process
const tilingIncrement = 449

// Tiles fills out with one active tile index per tiling. The number
// of tilings equals len(out), and every produced index is in
// [0, memorySize). Each float in floats should already be scaled by
// the caller so that one unit corresponds to one tile width; Tiles
// performs no unit conversion of its own. The ints are discrete state
// variables that are hashed along with the quantized floats, so
// states differing only in an int activate unrelated tiles.
//
// For a fixed memorySize and number of tilings, Tiles is a pure
// function of its inputs: identical calls always produce identical
// indices. Tiles never blocks and is safe for concurrent use.
//
// Tiles panics if len(out) < 1, if memorySize < 1, if
// len(floats) > MaxNumVars, or if the total coordinate count
// len(floats)+len(ints)+1 exceeds MaxNumCoords. These are caller
// contract violations, not runtime conditions.
func Tiles(out []int, memorySize int, floats []float64, ints []int) {
	numTilings := len(out)
	numFloats := len(floats)

	if numTilings < 1 {
		panic("tiles: need at least one tiling")
	}
	if memorySize < 1 {
		panic(fmt.Sprintf("tiles: memory size must be positive: %d",
			memorySize))
	}
	if numFloats > MaxNumVars {
		panic(fmt.Sprintf("tiles: too many floating point variables: "+
			"\n\thave(%d) \n\twant at most (%d)", numFloats, MaxNumVars))
	}
	if numFloats+len(ints)+1 > MaxNumCoords {
		panic(fmt.Sprintf("tiles: too many hashing coordinates: "+
			"\n\thave(%d) \n\twant at most (%d)", numFloats+len(ints)+1,
			MaxNumCoords))
	}

	var qstate [MaxNumVars]int
	var base [MaxNumVars]int
	var coords [MaxNumCoords]int

	// Quantize each float to an integer cell. Cells are measured in
	// units of 1/numTilings of a tile width so that successive tilings
	// can be staggered by whole cells.
	for i, f := range floats {
		qstate[i] = int(math.Floor(f * float64(numTilings)))
		base[i] = 0
	}

	// The int variables and the tiling number are hashed verbatim
	// after the float coordinates
	for i, v := range ints {
		coords[numFloats+1+i] = v
	}

	for t := 0; t < numTilings; t++ {
		// Find the coordinates of the activated tile in each tiling.
		// Each dimension of tiling t is displaced by (1+2i)*t cells,
		// so tilings shift by t/numTilings of a tile width along
		// dimension i=0 and by different odd multiples of that
		// fraction along every other dimension. The asymmetry stops
		// the offsets from aligning into a coarser effective grid.
		for i := 0; i < numFloats; i++ {
			if qstate[i] >= base[i] {
				coords[i] = qstate[i] - (qstate[i]-base[i])%numTilings
			} else {
				coords[i] = qstate[i] + 1 +
					(base[i]-qstate[i]-1)%numTilings - numTilings
			}
			base[i] += 1 + 2*i
		}

		// Baking the tiling number into the coordinates guarantees
		// that the same cell in two tilings hashes to different
		// addresses
		coords[numFloats] = t

		out[t] = Hash(coords[:numFloats+1+len(ints)], memorySize,
			tilingIncrement)
	}
}
