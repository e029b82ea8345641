package tensorutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHot(t *testing.T) {
	encoded := OneHot([]int{1, 3}, 5)

	require.Equal(t, []int{5}, []int(encoded.Shape()))

	data := encoded.Data().([]float64)
	assert.Equal(t, []float64{0, 1, 0, 1, 0}, data)
}

func TestOneHotBatch(t *testing.T) {
	encoded := OneHotBatch([][]int{{0}, {2}, {1, 2}}, 3)

	require.Equal(t, []int{3, 3}, []int(encoded.Shape()))

	data := encoded.Data().([]float64)
	assert.Equal(t, []float64{
		1, 0, 0,
		0, 0, 1,
		0, 1, 1,
	}, data)
}

func TestOneHotPanics(t *testing.T) {
	assert.Panics(t, func() { OneHot([]int{5}, 5) })
	assert.Panics(t, func() { OneHot([]int{-1}, 5) })
	assert.Panics(t, func() { OneHotBatch([][]int{{3}}, 3) })
}
