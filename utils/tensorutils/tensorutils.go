// Package tensorutils bridges sparse feature indices to the dense
// tensors consumed by gorgonia-based function approximators
package tensorutils

import (
	"fmt"

	"gorgonia.org/tensor"
)

// OneHot expands a set of active feature indices into a dense
// float64 tensor of shape (features,) with a 1.0 at every active
// index and 0.0 elsewhere. OneHot panics if an index is outside
// [0, features).
func OneHot(indices []int, features int) *tensor.Dense {
	backing := make([]float64, features)
	for _, index := range indices {
		if index < 0 || index >= features {
			panic(fmt.Sprintf("onehot: index out of range [0, %d): %d",
				features, index))
		}
		backing[index] = 1.0
	}

	return tensor.New(tensor.WithShape(features),
		tensor.WithBacking(backing))
}

// OneHotBatch expands a batch of active index sets into a dense
// float64 tensor of shape (batch, features), one row per index set.
// OneHotBatch panics if an index is outside [0, features).
func OneHotBatch(indices [][]int, features int) *tensor.Dense {
	backing := make([]float64, len(indices)*features)
	for row, active := range indices {
		for _, index := range active {
			if index < 0 || index >= features {
				panic(fmt.Sprintf("onehotbatch: index out of range "+
					"[0, %d): %d", features, index))
			}
			backing[row*features+index] = 1.0
		}
	}

	return tensor.New(tensor.WithShape(len(indices), features),
		tensor.WithBacking(backing))
}
