// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// VecClip performs an element-wise clipping of a vector's values such
// that each value is at least min and at most max
func VecClip(a *mat.VecDense, min, max float64) {
	for i := 0; i < a.Len(); i++ {
		value := a.AtVec(i)

		if value < min {
			a.SetVec(i, min)
		} else if value > max {
			a.SetVec(i, max)
		}
	}
}

// VecFloor performs an element-wise floor division of a vector by some
// constant b
func VecFloor(a *mat.VecDense, b float64) {
	for i := 0; i < a.Len(); i++ {
		mod := math.Floor(a.AtVec(i) / b)
		a.SetVec(i, mod)
	}
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	for i := 0; i < length; i++ {
		oneSlice[i] = 1.0
	}
	return mat.NewVecDense(length, oneSlice)
}

// CartesianProduct computes the cartesian product of a list of
// float64 slices. The first slice varies fastest: for input
// [[a b], [c d]], the product is [[a c], [b c], [a d], [b d]].
func CartesianProduct(sets [][]float64) [][]float64 {
	size := 1
	for _, set := range sets {
		size *= len(set)
	}

	product := make([][]float64, size)
	for i := 0; i < size; i++ {
		combination := make([]float64, len(sets))

		stride := 1
		for j, set := range sets {
			combination[j] = set[(i/stride)%len(set)]
			stride *= len(set)
		}
		product[i] = combination
	}
	return product
}
