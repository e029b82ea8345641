package main

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gotile/draw"
	"github.com/samuelfneumann/gotile/projection"
	"github.com/samuelfneumann/gotile/tiles"
	"github.com/samuelfneumann/gotile/utils/tensorutils"
)

func main() {
	var seed uint64 = 192382

	// Hash-based tile coding: 8 tilings into a memory of 4096 tiles
	coder, err := tiles.New(8, 4096, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(coder)

	v := mat.NewVecDense(2, []float64{2.5, 1.3})
	indices := coder.Indices(v)
	fmt.Println("active tiles:", indices)

	// Expand the sparse indices into a dense tensor for downstream
	// function approximators
	features := tensorutils.OneHot(indices, coder.VecLength())
	fmt.Println("feature tensor shape:", features.Shape())

	// Dense tile coding over a bounded 2-D space
	bounds := []r1.Interval{
		{Min: 0.0, Max: 1.0},
		{Min: 0.0, Max: 1.0},
	}
	dense, err := projection.NewTileCoding(bounds,
		[][]int{{5, 5}, {5, 5}, {5, 5}, {5, 5}}, seed, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(dense)
	fmt.Println("dense active tiles:",
		dense.EncodeIndices(mat.NewVecDense(2, []float64{0.3, 0.7})))

	// Render the overlapping tilings and the active tiles for a
	// query point
	err = draw.SaveTilings(dense, mat.NewVecDense(2,
		[]float64{0.3, 0.7}), 600, 600, "./tilings.png")
	if err != nil {
		panic(err)
	}
	fmt.Println("wrote tilings.png")
}
