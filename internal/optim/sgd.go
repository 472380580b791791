package optim

import (
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/numeric"
)

// DefaultLR is the SGD learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.01

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Each update also resets the parameter gradient to zero, so the next backward
// pass starts clean.
//
// Example:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig[float64]{LR: 0.1})
//	arena.Backward(loss)
//	optimizer.Step()
type SGD[T numeric.Float, V nn.Scalar[T, V]] struct {
	params []*nn.Parameter[T, V]
	lr     T
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig[T numeric.Float] struct {
	LR T // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD[T numeric.Float, V nn.Scalar[T, V]](params []*nn.Parameter[T, V], config SGDConfig[T]) *SGD[T, V] {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD[T, V]{
		params: params,
		lr:     config.LR,
	}
}

// Step performs a single optimization step on every parameter.
func (s *SGD[T, V]) Step() {
	for _, p := range s.params {
		p.Step(s.lr)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[T, V]) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[T, V]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[T, V]) SetLR(lr T) {
	s.lr = lr
}

// NumParams returns the number of parameters being optimized.
func (s *SGD[T, V]) NumParams() int {
	return len(s.params)
}
