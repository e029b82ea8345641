package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/utils/floatutils"
)

// UniformGrid partitions a bounded input space into a single
// non-overlapping grid and activates the one cell containing the
// input. It is the degenerate single-tiling form of tile coding: no
// offsets, no hashing, and state aggregation as the only form of
// generalization.
type UniformGrid struct {
	bounds   []r1.Interval
	bins     []int
	features int
}

// NewUniformGrid creates a grid over the given bounds with bins[i]
// cells along dimension i. The bounds and bins must have the same
// length and every dimension needs at least one cell.
func NewUniformGrid(bounds []r1.Interval, bins []int) (*UniformGrid, error) {
	if len(bounds) != len(bins) {
		return nil, fmt.Errorf("newuniformgrid: there should be a single "+
			"number of bins for each dimension: have(%d) want(%d)",
			len(bins), len(bounds))
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("newuniformgrid: cannot create a grid " +
			"over zero dimensions")
	}

	features := 1
	for i, b := range bins {
		if b < 1 {
			return nil, fmt.Errorf("newuniformgrid: need at least one bin "+
				"along dimension %d, got %d", i, b)
		}
		features *= b
	}

	heldBounds := make([]r1.Interval, len(bounds))
	copy(heldBounds, bounds)
	heldBins := make([]int, len(bins))
	copy(heldBins, bins)

	return &UniformGrid{heldBounds, heldBins, features}, nil
}

// cell returns the grid cell containing v along dimension i,
// clipping out-of-bounds inputs to the boundary cells
func (u *UniformGrid) cell(v float64, i int) int {
	width := (u.bounds[i].Max - u.bounds[i].Min) / float64(u.bins[i])
	cell := math.Floor((v - u.bounds[i].Min) / width)

	return int(floatutils.Clip(cell, 0.0, float64(u.bins[i]-1)))
}

// EncodeIndices returns the single active cell index for v. Cells are
// numbered with the first dimension varying fastest.
func (u *UniformGrid) EncodeIndices(v mat.Vector) []int {
	if v.Len() != len(u.bins) {
		panic(fmt.Sprintf("encodeindices: wrong input dimension: "+
			"have(%d) want(%d)", v.Len(), len(u.bins)))
	}

	index := 0
	for i := len(u.bins) - 1; i > -1; i-- {
		index = u.cell(v.AtVec(i), i) + u.bins[i]*index
	}
	return []int{index}
}

// Encode returns the one-hot encoding of v over the grid cells
func (u *UniformGrid) Encode(v mat.Vector) *mat.VecDense {
	encoded := mat.NewVecDense(u.features, nil)
	encoded.SetVec(u.EncodeIndices(v)[0], 1.0)
	return encoded
}

// VecLength returns the total number of cells in the grid
func (u *UniformGrid) VecLength() int {
	return u.features
}

// Dim returns the input dimension the grid expects
func (u *UniformGrid) Dim() int {
	return len(u.bins)
}

// String returns a string representation of a *UniformGrid
func (u *UniformGrid) String() string {
	return fmt.Sprintf("UniformGrid: %v", u.bins)
}
