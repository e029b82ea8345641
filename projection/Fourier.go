package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/utils/floatutils"
	"github.com/samuelfneumann/gotile/utils/matutils"
)

// Fourier computes an order-n Fourier cosine basis over a bounded
// input space. Feature i is cos(pi * c_i . s), where s is the input
// rescaled to the unit box and the coefficient vectors c_i enumerate
// all integer tuples in {0, ..., order}^dims. Feature vectors are
// L1-normalized so that activations sum to one in magnitude.
type Fourier struct {
	order        int
	bounds       []r1.Interval
	coefficients [][]float64
}

// NewFourier creates an order-n Fourier basis over the given bounds.
// The number of features grows as (order+1)^len(bounds).
func NewFourier(order int, bounds []r1.Interval) (*Fourier, error) {
	if order < 1 {
		return nil, fmt.Errorf("newfourier: order must be at least 1, "+
			"got %d", order)
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newfourier: cannot create a basis over " +
			"zero dimensions")
	}

	degrees := make([]float64, order+1)
	for i := range degrees {
		degrees[i] = float64(i)
	}

	sets := make([][]float64, len(bounds))
	for i := range sets {
		sets[i] = degrees
	}

	heldBounds := make([]r1.Interval, len(bounds))
	copy(heldBounds, bounds)

	return &Fourier{order, heldBounds, matutils.CartesianProduct(sets)}, nil
}

// Encode returns the normalized Fourier feature vector for v
func (f *Fourier) Encode(v mat.Vector) *mat.VecDense {
	if v.Len() != len(f.bounds) {
		panic(fmt.Sprintf("encode: wrong input dimension: "+
			"have(%d) want(%d)", v.Len(), len(f.bounds)))
	}

	scaled := make([]float64, v.Len())
	for i := range scaled {
		scaled[i] = floatutils.Normalize(v.AtVec(i), f.bounds[i])
	}

	encoded := mat.NewVecDense(len(f.coefficients), nil)

	z := 0.0
	for i, coefficients := range f.coefficients {
		dot := 0.0
		for j, c := range coefficients {
			dot += c * scaled[j]
		}

		activation := math.Cos(math.Pi * dot)
		z += math.Abs(activation)
		encoded.SetVec(i, activation)
	}

	encoded.ScaleVec(1.0/z, encoded)
	return encoded
}

// VecLength returns the number of features in an encoded vector
func (f *Fourier) VecLength() int {
	return len(f.coefficients)
}

// Dim returns the input dimension the basis expects
func (f *Fourier) Dim() int {
	return len(f.bounds)
}

// String returns a string representation of a *Fourier
func (f *Fourier) String() string {
	return fmt.Sprintf("Fourier: order %d  |  Features: %d", f.order,
		f.VecLength())
}
