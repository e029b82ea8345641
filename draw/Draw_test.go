package draw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/projection"
)

func newTestCoder(t *testing.T) *projection.TileCoding {
	t.Helper()

	coder, err := projection.NewTileCoding(
		[]r1.Interval{{Min: 0.0, Max: 1.0}, {Min: 0.0, Max: 1.0}},
		[][]int{{4, 4}, {4, 4}, {4, 4}},
		12,
		false,
	)
	require.NoError(t, err)
	return coder
}

func TestTilings(t *testing.T) {
	coder := newTestCoder(t)

	img, err := Tilings(coder, mat.NewVecDense(2,
		[]float64{0.3, 0.7}), 400, 300)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 300, bounds.Dy())
}

func TestTilingsNoQueryPoint(t *testing.T) {
	coder := newTestCoder(t)

	img, err := Tilings(coder, nil, 200, 200)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestTilingsErrors(t *testing.T) {
	coder := newTestCoder(t)

	_, err := Tilings(coder, nil, 0, 100)
	assert.Error(t, err)

	_, err = Tilings(coder, mat.NewVecDense(3, nil), 100, 100)
	assert.Error(t, err)

	oneD, err := projection.NewTileCoding(
		[]r1.Interval{{Min: 0.0, Max: 1.0}},
		[][]int{{4}},
		12,
		false,
	)
	require.NoError(t, err)

	_, err = Tilings(oneD, nil, 100, 100)
	assert.Error(t, err)
}

func TestSaveTilings(t *testing.T) {
	coder := newTestCoder(t)
	path := filepath.Join(t.TempDir(), "tilings.png")

	err := SaveTilings(coder, mat.NewVecDense(2,
		[]float64{0.5, 0.5}), 200, 200, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
