package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// assertEncodes checks that encoding v produces the expected feature
// vector to within tolerance
func assertEncodes(t *testing.T, p Projector, v []float64,
	expected []float64) {
	t.Helper()

	encoded := p.Encode(mat.NewVecDense(len(v), v))
	require.Equal(t, len(expected), encoded.Len())

	for i := range expected {
		assert.InDelta(t, expected[i], encoded.AtVec(i), 1e-6)
	}
}

func TestFourierOrder1_1D(t *testing.T) {
	f, err := NewFourier(1, []r1.Interval{{Min: 0.0, Max: 1.0}})
	require.NoError(t, err)

	assert.Equal(t, 1, f.Dim())
	assert.Equal(t, 2, f.VecLength())

	assertEncodes(t, f, []float64{-1.0}, []float64{0.5, -0.5})
	assertEncodes(t, f, []float64{-0.5}, []float64{1.0, 0.0})
	assertEncodes(t, f, []float64{0.0}, []float64{0.5, 0.5})
	assertEncodes(t, f, []float64{0.5}, []float64{1.0, 0.0})
	assertEncodes(t, f, []float64{1.0}, []float64{0.5, -0.5})

	assertEncodes(t, f, []float64{-2.0 / 3.0},
		[]float64{2.0 / 3.0, -1.0 / 3.0})
	assertEncodes(t, f, []float64{-1.0 / 3.0},
		[]float64{2.0 / 3.0, 1.0 / 3.0})
	assertEncodes(t, f, []float64{1.0 / 3.0},
		[]float64{2.0 / 3.0, 1.0 / 3.0})
	assertEncodes(t, f, []float64{2.0 / 3.0},
		[]float64{2.0 / 3.0, -1.0 / 3.0})
}

func TestFourierOrder1_2D(t *testing.T) {
	f, err := NewFourier(1, []r1.Interval{
		{Min: 0.0, Max: 1.0},
		{Min: 5.0, Max: 6.0},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, f.Dim())
	assert.Equal(t, 4, f.VecLength())

	// Coefficient tuples are ordered with the first dimension varying
	// fastest: (0,0), (1,0), (0,1), (1,1)
	assertEncodes(t, f, []float64{0.0, 5.0},
		[]float64{0.25, 0.25, 0.25, 0.25})
	assertEncodes(t, f, []float64{0.5, 5.0},
		[]float64{0.5, 0.0, 0.5, 0.0})
	assertEncodes(t, f, []float64{0.0, 5.5},
		[]float64{0.5, 0.5, 0.0, 0.0})
	assertEncodes(t, f, []float64{0.5, 5.5},
		[]float64{0.5, 0.0, 0.0, -0.5})
	assertEncodes(t, f, []float64{1.0, 5.5},
		[]float64{0.5, -0.5, 0.0, 0.0})
	assertEncodes(t, f, []float64{0.5, 6.0},
		[]float64{0.5, 0.0, -0.5, 0.0})
	assertEncodes(t, f, []float64{1.0, 6.0},
		[]float64{0.25, -0.25, -0.25, 0.25})
}

func TestFourierOrder2_1D(t *testing.T) {
	f, err := NewFourier(2, []r1.Interval{{Min: 0.0, Max: 1.0}})
	require.NoError(t, err)

	assert.Equal(t, 1, f.Dim())
	assert.Equal(t, 3, f.VecLength())

	assertEncodes(t, f, []float64{-1.0},
		[]float64{1.0 / 3.0, -1.0 / 3.0, 1.0 / 3.0})
	assertEncodes(t, f, []float64{-0.5}, []float64{0.5, 0.0, -0.5})
	assertEncodes(t, f, []float64{0.0},
		[]float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0})
	assertEncodes(t, f, []float64{0.5}, []float64{0.5, 0.0, -0.5})
	assertEncodes(t, f, []float64{1.0},
		[]float64{1.0 / 3.0, -1.0 / 3.0, 1.0 / 3.0})

	assertEncodes(t, f, []float64{-2.0 / 3.0},
		[]float64{0.5, -0.25, -0.25})
	assertEncodes(t, f, []float64{-1.0 / 3.0},
		[]float64{0.5, 0.25, -0.25})
	assertEncodes(t, f, []float64{1.0 / 3.0},
		[]float64{0.5, 0.25, -0.25})
	assertEncodes(t, f, []float64{2.0 / 3.0},
		[]float64{0.5, -0.25, -0.25})
}

func TestFourierErrors(t *testing.T) {
	_, err := NewFourier(0, []r1.Interval{{Min: 0.0, Max: 1.0}})
	assert.Error(t, err)

	_, err = NewFourier(1, nil)
	assert.Error(t, err)
}
