package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/utils/floatutils"
	"github.com/samuelfneumann/gotile/utils/matutils"
)

// Polynomial computes an order-n polynomial basis over a bounded
// input space. Inputs are rescaled to [-1, 1] and feature i is the
// product over dimensions of the rescaled input raised to the
// exponent tuple e_i, where the tuples enumerate
// {0, ..., order}^dims. The constant feature (all exponents zero) is
// always present.
type Polynomial struct {
	order     int
	bounds    []r1.Interval
	exponents [][]float64
}

// NewPolynomial creates an order-n polynomial basis over the given
// bounds. The number of features grows as (order+1)^len(bounds).
func NewPolynomial(order int, bounds []r1.Interval) (*Polynomial, error) {
	if order < 1 {
		return nil, fmt.Errorf("newpolynomial: order must be at least 1, "+
			"got %d", order)
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newpolynomial: cannot create a basis " +
			"over zero dimensions")
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

	return &Polynomial{order, heldBounds, matutils.CartesianProduct(sets)},
		nil
}

// Encode returns the polynomial feature vector for v
func (p *Polynomial) Encode(v mat.Vector) *mat.VecDense {
	if v.Len() != len(p.bounds) {
		panic(fmt.Sprintf("encode: wrong input dimension: "+
			"have(%d) want(%d)", v.Len(), len(p.bounds)))
	}

	scaled := make([]float64, v.Len())
	for i := range scaled {
		scaled[i] = 2.0*floatutils.Normalize(v.AtVec(i), p.bounds[i]) - 1.0
	}

	encoded := mat.NewVecDense(len(p.exponents), nil)
	for i, exponents := range p.exponents {
		activation := 1.0
		for j, e := range exponents {
			activation *= math.Pow(scaled[j], e)
		}
		encoded.SetVec(i, activation)
	}
	return encoded
}

// VecLength returns the number of features in an encoded vector
func (p *Polynomial) VecLength() int {
	return len(p.exponents)
}

// Dim returns the input dimension the basis expects
func (p *Polynomial) Dim() int {
	return len(p.bounds)
}

// String returns a string representation of a *Polynomial
func (p *Polynomial) String() string {
	return fmt.Sprintf("Polynomial: order %d  |  Features: %d", p.order,
		p.VecLength())
}
