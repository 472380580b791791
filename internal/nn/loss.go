package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/numeric"
)

// MSE builds the summed squared error sum_i (outputs_i - targets_i)².
//
// The accumulator starts from a temporary zero leaf, so the whole loss graph
// is released by the store's ClearTemps.
//
// Example:
//
//	loss := nn.MSE(arena, outputs, targets)
//	arena.Backward(loss)
func MSE[T numeric.Float, V Scalar[T, V]](store Store[T, V], outputs, targets []V) V {
	return SquaredError[T](store.AllocTemp(0), outputs, targets)
}

// SquaredError adds (outputs_i - targets_i)² to acc in order and returns the
// new accumulator. It lets a loss span several samples of a batch.
func SquaredError[T numeric.Float, V Scalar[T, V]](acc V, outputs, targets []V) V {
	if len(outputs) != len(targets) {
		panic(fmt.Sprintf("nn: got %d outputs and %d targets", len(outputs), len(targets)))
	}
	for i := range outputs {
		diff := outputs[i].Sub(targets[i])
		acc = acc.Add(diff.Mul(diff))
	}
	return acc
}
