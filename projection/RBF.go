package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/utils/matutils"
)

// RBF computes a normalized radial basis network over a continuous
// input space. Each feature measures the proximity of the input to
// one centre, accumulating a Gaussian response per dimension, and the
// feature vector is rescaled so that its activations sum to one.
// Unlike grid-based projectors, every feature is active for every
// input, with activation decaying smoothly with distance.
type RBF struct {
	centers *mat.Dense // one centre per row
	beta    []float64  // per-dimension kernel precision, 0.5/sigma^2
}

// NewRBF creates a radial basis network with one feature per row of
// centers and per-dimension kernel widths sigmas. The number of
// columns of centers must equal len(sigmas).
func NewRBF(centers *mat.Dense, sigmas []float64) (*RBF, error) {
	_, dims := centers.Dims()
	if dims != len(sigmas) {
		return nil, fmt.Errorf("newrbf: dimensions of centers and sigmas "+
			"must agree: have(%d) want(%d)", len(sigmas), dims)
	}

	beta := make([]float64, len(sigmas))
	for i, sigma := range sigmas {
		if sigma <= 0 {
			return nil, fmt.Errorf("newrbf: kernel widths must be "+
				"positive, got %v along dimension %d", sigma, i)
		}
		beta[i] = 0.5 / (sigma * sigma)
	}

	held := mat.DenseCopyOf(centers)
	return &RBF{held, beta}, nil
}

// NewRBFGrid creates a radial basis network with centres placed at
// the middles of the cells of a uniform partition of the given bounds
// and kernel widths equal to the partition widths.
func NewRBFGrid(bounds []r1.Interval, bins []int) (*RBF, error) {
	if len(bounds) != len(bins) {
		return nil, fmt.Errorf("newrbfgrid: there should be a single "+
			"number of bins for each dimension: have(%d) want(%d)",
			len(bins), len(bounds))
	}

	sigmas := make([]float64, len(bounds))
	sets := make([][]float64, len(bounds))
	for i, interval := range bounds {
		if bins[i] < 1 {
			return nil, fmt.Errorf("newrbfgrid: need at least one bin "+
				"along dimension %d, got %d", i, bins[i])
		}

		width := (interval.Max - interval.Min) / float64(bins[i])
		sigmas[i] = width

		centers := make([]float64, bins[i])
		for j := range centers {
			centers[j] = interval.Min + width*(float64(j)+0.5)
		}
		sets[i] = centers
	}

	combinations := matutils.CartesianProduct(sets)
	flat := make([]float64, 0, len(combinations)*len(bounds))
	for _, combination := range combinations {
		flat = append(flat, combination...)
	}

	centers := mat.NewDense(len(combinations), len(bounds), flat)
	return NewRBF(centers, sigmas)
}

// Kernel returns the unnormalized per-centre responses for input v
func (r *RBF) Kernel(v mat.Vector) *mat.VecDense {
	features, dims := r.centers.Dims()
	if v.Len() != dims {
		panic(fmt.Sprintf("kernel: wrong input dimension: "+
			"have(%d) want(%d)", v.Len(), dims))
	}

	responses := mat.NewVecDense(features, nil)
	for i := 0; i < features; i++ {
		response := 0.0
		for j := 0; j < dims; j++ {
			d := v.AtVec(j) - r.centers.At(i, j)
			response += math.Exp(-r.beta[j] * d * d)
		}
		responses.SetVec(i, response)
	}
	return responses
}

// Encode returns the normalized radial basis feature vector for v
func (r *RBF) Encode(v mat.Vector) *mat.VecDense {
	encoded := r.Kernel(v)

	z := 0.0
	for i := 0; i < encoded.Len(); i++ {
		z += encoded.AtVec(i)
	}

	encoded.ScaleVec(1.0/z, encoded)
	return encoded
}

// VecLength returns the number of features in an encoded vector
func (r *RBF) VecLength() int {
	features, _ := r.centers.Dims()
	return features
}

// Dim returns the input dimension the network expects
func (r *RBF) Dim() int {
	_, dims := r.centers.Dims()
	return dims
}

// String returns a string representation of a *RBF
func (r *RBF) String() string {
	return fmt.Sprintf("RBF: Features: %d  |  Dims: %d", r.VecLength(),
		r.Dim())
}
