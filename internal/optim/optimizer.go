// Package optim implements parameter updates for training networks built
// with package nn.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient descent, param -= lr * grad
//
// Example usage:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig[float64]{LR: 0.15})
//
//	for range iterations {
//	    loss := nn.MSE(arena, mlp.Forward(x), y)
//	    arena.Backward(loss)
//	    optimizer.Step()
//	    arena.ClearTemps()
//	}
package optim

import "github.com/born-ml/scalar/internal/numeric"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer[T numeric.Float] interface {
	// Step applies gradient updates to all parameters using the gradients
	// accumulated by the last backward pass, then clears them.
	Step()

	// ZeroGrad clears all parameter gradients without updating them.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() T
}
