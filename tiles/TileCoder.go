package tiles

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TileCoder tile codes gonum vectors into a bounded memory. A
// TileCoder fixes the number of tilings, the memory size, and an
// optional slice of integer state variables that are hashed along
// with every encoded vector. The zero-one encoded representation has
// exactly memorySize features, of which at most numTilings are active
// for any input.
//
// Unlike dense tile coding, the memory does not grow with the number
// of tiles per tiling: the tile grid is unbounded and conceptually
// infinite, and tiles are mapped into memory by universal hashing.
// Choosing a memory far smaller than the number of distinct reachable
// tiles is not an error, only a trade of generalization quality for
// space.
//
// A TileCoder holds no mutable state and may be shared freely between
// goroutines.
type TileCoder struct {
	numTilings int
	memorySize int
	ints       []int
}

// New creates and returns a new TileCoder using numTilings tilings
// hashed into a memory of memorySize tiles. The ints parameter holds
// integer state variables hashed alongside every encoded vector; it
// may be nil. The slice is copied, so the caller may reuse it.
func New(numTilings, memorySize int, ints []int) (*TileCoder, error) {
	if numTilings < 1 {
		return nil, fmt.Errorf("new: need at least one tiling, got %d",
			numTilings)
	}
	if memorySize < 1 {
		return nil, fmt.Errorf("new: memory size must be positive, got %d",
			memorySize)
	}
	if len(ints)+1 > MaxNumCoords {
		return nil, fmt.Errorf("new: too many int variables: have %d, "+
			"want at most %d", len(ints), MaxNumCoords-1)
	}

	held := make([]int, len(ints))
	copy(held, ints)

	return &TileCoder{numTilings, memorySize, held}, nil
}

// Indices returns the indices of the active tiles for vector v, one
// index per tiling, each in [0, VecLength()). The components of v
// should be pre-scaled by the caller so that one unit equals one tile
// width.
func (t *TileCoder) Indices(v mat.Vector) []int {
	floats := make([]float64, v.Len())
	for i := range floats {
		floats[i] = v.AtVec(i)
	}

	out := make([]int, t.numTilings)
	Tiles(out, t.memorySize, floats, t.ints)
	return out
}

// Encode encodes a single vector as a zero-one tile-coded vector of
// length VecLength()
func (t *TileCoder) Encode(v mat.Vector) *mat.VecDense {
	tileCoded := mat.NewVecDense(t.memorySize, nil)
	for _, index := range t.Indices(v) {
		tileCoded.SetVec(index, 1.0)
	}
	return tileCoded
}

// EncodeBatch encodes a batch of vectors held in a Dense matrix. Each
// row of b should be a sequential feature and each column a
// sequential sample in the batch. The returned matrix has one column
// per sample and VecLength() rows.
func (t *TileCoder) EncodeBatch(b *mat.Dense) *mat.Dense {
	rows, cols := b.Dims()
	tileCoded := mat.NewDense(t.memorySize, cols, nil)

	floats := make([]float64, rows)
	out := make([]int, t.numTilings)

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			floats[i] = b.At(i, j)
		}

		Tiles(out, t.memorySize, floats, t.ints)
		for _, index := range out {
			tileCoded.Set(index, j, 1.0)
		}
	}
	return tileCoded
}

// VecLength returns the number of features in a tile-coded vector,
// which equals the memory size
func (t *TileCoder) VecLength() int {
	return t.memorySize
}

// NumTilings returns the number of tilings the tile coder uses for
// encoding vectors, which equals the number of active features in any
// encoded vector
func (t *TileCoder) NumTilings() int {
	return t.numTilings
}

// String returns a string representation of a *TileCoder
func (t *TileCoder) String() string {
	return fmt.Sprintf("Tilings: %d  |  Memory: %d", t.numTilings,
		t.memorySize)
}
