package projection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/tiles"
)

// SuttonTiles adapts the hashed tile coder of the tiles package to
// the SparseProjector interface. Inputs are rescaled so that the
// given bounds span one tile width per grid resolution unit: a
// projector built with resolution r places r tiles per tiling across
// each bounded dimension. The encoded representation has memorySize
// features of which numTilings are active.
type SuttonTiles struct {
	coder      *tiles.TileCoder
	bounds     []r1.Interval
	resolution float64
}

// NewSuttonTiles creates a hashed tile coding projector over the
// given bounds using numTilings tilings of resolution tiles per
// dimension, hashed into a memory of memorySize features.
func NewSuttonTiles(bounds []r1.Interval, numTilings, resolution,
	memorySize int) (*SuttonTiles, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newsuttontiles: cannot tile zero " +
			"dimensions")
	}
	if len(bounds) > tiles.MaxNumVars {
		return nil, fmt.Errorf("newsuttontiles: too many dimensions: "+
			"have(%d) want at most (%d)", len(bounds), tiles.MaxNumVars)
	}
	if resolution < 1 {
		return nil, fmt.Errorf("newsuttontiles: resolution must be "+
			"positive, got %d", resolution)
	}

	coder, err := tiles.New(numTilings, memorySize, nil)
	if err != nil {
		return nil, fmt.Errorf("newsuttontiles: %v", err)
	}

	heldBounds := make([]r1.Interval, len(bounds))
	copy(heldBounds, bounds)

	return &SuttonTiles{coder, heldBounds, float64(resolution)}, nil
}

// scale rescales v into tile-width units for the underlying coder
func (s *SuttonTiles) scale(v mat.Vector) *mat.VecDense {
	if v.Len() != len(s.bounds) {
		panic(fmt.Sprintf("scale: wrong input dimension: "+
			"have(%d) want(%d)", v.Len(), len(s.bounds)))
	}

	scaled := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		width := (s.bounds[i].Max - s.bounds[i].Min) / s.resolution
		scaled.SetVec(i, (v.AtVec(i)-s.bounds[i].Min)/width)
	}
	return scaled
}

// EncodeIndices returns the indices of the active tiles for v, one
// per tiling
func (s *SuttonTiles) EncodeIndices(v mat.Vector) []int {
	return s.coder.Indices(s.scale(v))
}

// Encode encodes a single vector as a zero-one tile-coded vector of
// length VecLength()
func (s *SuttonTiles) Encode(v mat.Vector) *mat.VecDense {
	return s.coder.Encode(s.scale(v))
}

// VecLength returns the number of features in an encoded vector,
// which equals the memory size of the underlying coder
func (s *SuttonTiles) VecLength() int {
	return s.coder.VecLength()
}

// Dim returns the input dimension the projector expects
func (s *SuttonTiles) Dim() int {
	return len(s.bounds)
}

// NumTilings returns the number of tilings used for encoding vectors
func (s *SuttonTiles) NumTilings() int {
	return s.coder.NumTilings()
}

// String returns a string representation of a *SuttonTiles
func (s *SuttonTiles) String() string {
	return fmt.Sprintf("SuttonTiles: %v", s.coder)
}
