package projection

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/samuelfneumann/gotile/utils/floatutils"
	"github.com/samuelfneumann/gotile/utils/matutils"
)

// OffsetDiv controls tiling offsets. For each dimension, tilings are
// offset by randomly sampling from a uniform distribution with
// support [- tile width/OffsetDiv, tile width/OffsetDiv]
const OffsetDiv float64 = 1.5

// TileCoding tile codes a vector using dense tilings over the entire
// bounded input space. Every dimension of the space is fully tiled,
// so the number of features equals the total number of tiles across
// all tilings and no hashing is involved. Tilings are decorrelated by
// uniform random offsets drawn from a seeded source, so a TileCoding
// built from the same arguments always produces the same encoding.
//
// Dense tile coding trades memory for exactness: unlike the hashed
// coder in the tiles package, distinct tiles never collide, but the
// feature count grows with the product of bins along every dimension.
type TileCoding struct {
	numTilings  int
	bounds      []r1.Interval
	offsets     []*mat.Dense
	bins        [][]int
	binLengths  [][]float64
	seed        uint64
	includeBias bool
}

// NewTileCoding creates and returns a new TileCoding projector. The
// bounds argument gives the interval tiled along each dimension and
// must have the same length as vectors that will be encoded.
//
// The bins argument determines both the number of tilings and the
// number of tiles per tiling. The number of elements in the outer
// slice is the number of tilings. The sub-slices determine how many
// tiles are placed along each dimension for the respective tiling,
// so len(bins[i]) must equal len(bounds) for every i. For example,
// with bins := [][]int{{2, 2}, {4, 3}} the projector uses two
// tilings; the first is a 2x2 grid and the second places 4 tiles
// along the first dimension and 3 along the second.
//
// The includeBias parameter determines whether a bias unit is kept as
// the first unit of the encoded representation.
func NewTileCoding(bounds []r1.Interval, bins [][]int, seed uint64,
	includeBias bool) (*TileCoding, error) {
	if len(bins) == 0 {
		return nil, fmt.Errorf("newtilecoding: need at least one tiling")
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newtilecoding: cannot tile zero dimensions")
	}

	numTilings := len(bins)
	for i := range bins {
		if len(bins[i]) != len(bounds) {
			return nil, fmt.Errorf("newtilecoding: there should be a "+
				"single number of bins for each dimension: "+
				"have(%d) want(%d)", len(bins[i]), len(bounds))
		}
		for j, b := range bins[i] {
			if b < 1 {
				return nil, fmt.Errorf("newtilecoding: need at least one "+
					"bin along dimension %d of tiling %d, got %d", j, i, b)
			}
		}
	}

	// Calculate the tile widths and the offset bounds for each tiling
	var offsetBounds []r1.Interval
	binLengths := make([][]float64, numTilings)
	for j := 0; j < numTilings; j++ {
		binLengths[j] = make([]float64, len(bounds))

		for i := range bounds {
			binLength := (bounds[i].Max - bounds[i].Min)
			binLength /= float64(bins[j][i])
			bound := binLength / OffsetDiv // Bounds tiling offsets

			binLengths[j][i] = binLength
			offsetBounds = append(offsetBounds,
				r1.Interval{Min: -bound, Max: bound})
		}
	}

	// Create RNG for uniform sampling of tiling offsets
	source := rand.NewSource(seed)
	u := distmv.NewUniform(offsetBounds, source)
	sampler := samplemv.IID{Dist: u}

	// Calculate offsets
	offsets := make([]*mat.Dense, numTilings)
	for i := 0; i < numTilings; i++ {
		samples := mat.NewDense(1, len(offsetBounds), nil)
		sampler.Sample(samples)

		offsets[i] = samples
	}

	heldBounds := make([]r1.Interval, len(bounds))
	copy(heldBounds, bounds)

	return &TileCoding{numTilings, heldBounds, offsets, bins, binLengths,
		seed, includeBias}, nil
}

// featuresBeforeTiling calculates how many features exist in the
// encoded representation before tiling number i
func (t *TileCoding) featuresBeforeTiling(i int) int {
	features := 0
	for j := 0; j < i; j++ {
		features += prod(t.bins[j])
	}
	return features
}

// encodeWithTiling returns the index of the encoded feature vector
// which should be a 1.0 when the input vector v is encoded with
// tiling number tiling
func (t *TileCoding) encodeWithTiling(v mat.Vector, tiling int) int {
	bias := 0
	if t.includeBias {
		bias = 1
	}

	// indexOffset is the index into the encoded vector at which the
	// current tiling starts
	indexOffset := t.featuresBeforeTiling(tiling)
	index := 0

	for i := len(t.bins[tiling]) - 1; i > -1; i-- {
		// Offset the tiling. Offset columns are laid out tiling-major,
		// so tiling j's offsets occupy columns [j*dims, (j+1)*dims).
		data := v.AtVec(i) + t.offsets[tiling].At(0,
			tiling*len(t.bounds)+i)

		// Calculate the tile along the current dimension in which the
		// feature falls
		tile := math.Floor((data - t.bounds[i].Min) /
			t.binLengths[tiling][i])

		// If out-of-bounds, use the boundary tile
		tile = floatutils.Clip(tile, 0.0, float64(t.bins[tiling][i]-1))

		// Cells are numbered with the first dimension varying fastest
		index = int(tile) + t.bins[tiling][i]*index
	}
	return indexOffset + index + bias
}

// EncodeIndices returns the indices of the non-zero features of the
// encoding of v, one per tiling, plus the bias unit if present
func (t *TileCoding) EncodeIndices(v mat.Vector) []int {
	if v.Len() != len(t.bounds) {
		panic(fmt.Sprintf("encodeindices: wrong input dimension: "+
			"have(%d) want(%d)", v.Len(), len(t.bounds)))
	}

	bias := 0
	if t.includeBias {
		bias = 1
	}

	indices := make([]int, t.numTilings+bias)
	for i := 0; i < t.numTilings; i++ {
		indices[i+bias] = t.encodeWithTiling(v, i)
	}

	// The bias unit, when present, is always feature 0
	if t.includeBias {
		indices[0] = 0
	}
	return indices
}

// Encode encodes a single vector as a zero-one tile-coded vector
func (t *TileCoding) Encode(v mat.Vector) *mat.VecDense {
	tileCoded := mat.NewVecDense(t.VecLength(), nil)
	for _, index := range t.EncodeIndices(v) {
		tileCoded.SetVec(index, 1.0)
	}
	return tileCoded
}

// EncodeBatch encodes a batch of vectors held in a Dense matrix. In
// this batch, each row should be a sequential feature, while each
// column should be a sequential sample in the batch. This function
// returns a new matrix which holds the tile-coded representation of
// each vector in the batch, one sample per column.
func (t *TileCoding) EncodeBatch(b *mat.Dense) *mat.Dense {
	bias := 0
	if t.includeBias {
		bias = 1
	}

	rows, cols := b.Dims()
	tileCoded := mat.NewDense(t.VecLength(), cols, nil)

	// A vector of 1.0's is needed for the offset calculations
	ones := matutils.VecOnes(cols)

	// Vector that holds all the data that is manipulated
	data := mat.NewVecDense(cols, nil)

	for j := 0; j < t.numTilings; j++ {
		indexOffset := t.featuresBeforeTiling(j)
		index := mat.NewVecDense(cols, nil)

		// Loop through each feature dimension to calculate the tile
		// index to set to 1.0
		for i := rows - 1; i > -1; i-- {
			data.CloneFromVec(b.RowView(i))

			// Offset the tiling
			data.AddScaledVec(data,
				t.offsets[j].At(0, j*len(t.bounds)+i), ones)

			// Calculate which tile each feature is in along the
			// current dimension
			data.AddScaledVec(data, -t.bounds[i].Min, ones)
			matutils.VecFloor(data, t.binLengths[j][i])

			// If out-of-bounds, use the boundary tile
			matutils.VecClip(data, 0.0, float64(t.bins[j][i]-1))

			// Cells are numbered with the first dimension varying
			// fastest
			index.AddScaledVec(data, float64(t.bins[j][i]), index)
		}

		// Set the proper 1.0 values
		for i := 0; i < index.Len(); i++ {
			row := indexOffset + int(index.AtVec(i)) + bias
			tileCoded.Set(row, i, 1.0)
		}
	}

	if t.includeBias {
		for i := 0; i < cols; i++ {
			tileCoded.Set(0, i, 1.0)
		}
	}
	return tileCoded
}

// VecLength returns the number of features in an encoded vector
func (t *TileCoding) VecLength() int {
	features := t.featuresBeforeTiling(t.numTilings)
	if t.includeBias {
		return features + 1
	}
	return features
}

// Dim returns the input dimension the projector expects
func (t *TileCoding) Dim() int {
	return len(t.bounds)
}

// NumTilings returns the number of tilings the projector uses for
// encoding vectors
func (t *TileCoding) NumTilings() int {
	return t.numTilings
}

// Bounds returns the interval tiled along each dimension
func (t *TileCoding) Bounds() []r1.Interval {
	bounds := make([]r1.Interval, len(t.bounds))
	copy(bounds, t.bounds)
	return bounds
}

// Bins returns the number of tiles along each dimension of tiling i
func (t *TileCoding) Bins(i int) []int {
	bins := make([]int, len(t.bins[i]))
	copy(bins, t.bins[i])
	return bins
}

// Offset returns the offset of tiling i along dimension d
func (t *TileCoding) Offset(i, d int) float64 {
	return t.offsets[i].At(0, i*len(t.bounds)+d)
}

// String returns a string representation of a *TileCoding
func (t *TileCoding) String() string {
	return fmt.Sprintf("Tilings: %d  |  Tiles: %v", t.numTilings, t.bins)
}

// prod calculates the product of all integers in a []int
func prod(i []int) int {
	prod := 1
	for _, v := range i {
		prod *= v
	}
	return prod
}
