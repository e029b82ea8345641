// Package projection provides basis projectors that map
// low-dimensional continuous state vectors onto the feature vectors
// consumed by linear function approximators. Projectors differ in how
// they generalize: grid-based projectors produce sparse binary
// features with hard cell boundaries, while Fourier, polynomial, and
// radial bases produce dense features that vary smoothly with the
// input.
package projection

import "gonum.org/v1/gonum/mat"

// Projector computes a feature vector from a state vector. Projectors
// are immutable after construction and safe for concurrent use.
type Projector interface {
	// Encode returns the feature vector for v
	Encode(v mat.Vector) *mat.VecDense

	// VecLength returns the number of features in an encoded vector
	VecLength() int

	// Dim returns the input dimension the projector expects
	Dim() int
}

// SparseProjector is a Projector whose feature vectors are zero-one
// valued with a small, fixed number of active features
type SparseProjector interface {
	Projector

	// EncodeIndices returns the indices of the non-zero features of
	// the encoding of v
	EncodeIndices(v mat.Vector) []int
}
