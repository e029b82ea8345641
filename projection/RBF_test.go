package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestRBFSize(t *testing.T) {
	sizes := []int{1, 3, 10, 100}
	for _, size := range sizes {
		centers := mat.NewDense(size, 1, nil)
		rbf, err := NewRBF(centers, []float64{0.25})
		require.NoError(t, err)

		assert.Equal(t, size, rbf.VecLength())
		assert.Equal(t, 1, rbf.Dim())
	}
}

// Kernel responses should decay monotonically with distance from the
// centre
func TestRBFKernelRelevance(t *testing.T) {
	rbf, err := NewRBF(mat.NewDense(1, 1, []float64{0.0}),
		[]float64{0.25})
	require.NoError(t, err)

	previous := rbf.Kernel(mat.NewVecDense(1, []float64{0.0})).AtVec(0)
	for i := 1; i < 10; i++ {
		response := rbf.Kernel(mat.NewVecDense(1,
			[]float64{float64(i) / 10.0})).AtVec(0)

		assert.Less(t, response, previous)
		previous = response
	}
}

// Kernel responses should be symmetric about the centre
func TestRBFKernelIsotropy(t *testing.T) {
	rbf, err := NewRBF(mat.NewDense(1, 1, []float64{0.0}),
		[]float64{0.25})
	require.NoError(t, err)

	center := rbf.Kernel(mat.NewVecDense(1, []float64{0.0})).AtVec(0)
	for i := 1; i < 10; i++ {
		left := rbf.Kernel(mat.NewVecDense(1,
			[]float64{-float64(i) / 10.0})).AtVec(0)
		right := rbf.Kernel(mat.NewVecDense(1,
			[]float64{float64(i) / 10.0})).AtVec(0)

		assert.Less(t, left, center)
		assert.Less(t, right, center)
		assert.Equal(t, left, right)
	}
}

func TestRBFEncode1D(t *testing.T) {
	rbf, err := NewRBF(
		mat.NewDense(3, 1, []float64{0.0, 0.5, 1.0}),
		[]float64{0.25},
	)
	require.NoError(t, err)

	assertEncodes(t, rbf, []float64{0.25},
		[]float64{0.49546264, 0.49546264, 0.00907471})

	// Activations always sum to one
	encoded := rbf.Encode(mat.NewVecDense(1, []float64{0.25}))
	sum := 0.0
	for i := 0; i < encoded.Len(); i++ {
		sum += encoded.AtVec(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestRBFEncode2D(t *testing.T) {
	rbf, err := NewRBF(
		mat.NewDense(3, 2, []float64{
			0.0, -10.0,
			0.5, -8.0,
			1.0, -6.0,
		}),
		[]float64{0.25, 2.0},
	)
	require.NoError(t, err)

	assertEncodes(t, rbf, []float64{0.67, -7.0},
		[]float64{0.10579518, 0.50344131, 0.3907635})
}

func TestRBFGrid(t *testing.T) {
	rbf, err := NewRBFGrid(
		[]r1.Interval{{Min: 0.0, Max: 1.0}, {Min: 0.0, Max: 2.0}},
		[]int{2, 4},
	)
	require.NoError(t, err)

	assert.Equal(t, 8, rbf.VecLength())
	assert.Equal(t, 2, rbf.Dim())

	// An input at a grid centre should prefer that centre's feature
	encoded := rbf.Encode(mat.NewVecDense(2, []float64{0.25, 0.25}))

	best, bestIndex := encoded.AtVec(0), 0
	for i := 1; i < encoded.Len(); i++ {
		if encoded.AtVec(i) > best {
			best, bestIndex = encoded.AtVec(i), i
		}
	}
	assert.Equal(t, 0, bestIndex)
}

func TestRBFErrors(t *testing.T) {
	_, err := NewRBF(mat.NewDense(2, 2, nil), []float64{0.25})
	assert.Error(t, err)

	_, err = NewRBF(mat.NewDense(2, 1, nil), []float64{0.0})
	assert.Error(t, err)

	_, err = NewRBFGrid([]r1.Interval{{Min: 0.0, Max: 1.0}}, []int{2, 2})
	assert.Error(t, err)

	_, err = NewRBFGrid([]r1.Interval{{Min: 0.0, Max: 1.0}}, []int{0})
	assert.Error(t, err)
}
