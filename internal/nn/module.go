// Package nn implements small feed-forward networks on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Scalar and Store: the node and graph contracts both storage strategies
//     satisfy (autodiff.Handle/autodiff.Arena and graph.Node/graph.Graph)
//   - Parameter: a named trainable leaf
//   - Neuron, Layer, MLP: activation(sum_i w_i*x_i + b) stacked into layers
//   - MSE: summed squared error loss
//
// Nothing here adds engine capability; every computation goes through the
// operators of the underlying store.
package nn

import "github.com/born-ml/scalar/internal/numeric"

// Scalar is the contract of a graph node handle.
//
// V is the handle type itself, e.g. autodiff.Handle[float64] or
// *graph.Node[float64].
type Scalar[T numeric.Float, V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
	Tanh() V
	ReLU() V
	Data() T
	SetData(T)
	Grad() T
	ZeroGrad()
	Step(lr T)
}

// Store is the contract of a graph store that allocates leaves and runs
// backward passes.
type Store[T numeric.Float, V any] interface {
	// Alloc creates a permanent leaf.
	Alloc(data T) V
	// AllocTemp creates a leaf discarded by ClearTemps.
	AllocTemp(data T) V
	// Backward propagates gradients from root.
	Backward(root V)
	// ZeroGrads resets every gradient in the store.
	ZeroGrads()
	// ClearTemps discards the nodes of the current iteration.
	ClearTemps()
}

// Module is implemented by every network component with trainable state.
type Module[T numeric.Float, V Scalar[T, V]] interface {
	// Forward maps input handles to output handles.
	Forward(inputs []V) []V

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[T, V]
}

// Activation maps a pre-activation node to its activated node.
// A nil Activation leaves the weighted sum unchanged.
type Activation[V any] func(V) V

// Tanh returns the hyperbolic tangent activation.
func Tanh[T numeric.Float, V Scalar[T, V]]() Activation[V] {
	return func(v V) V { return v.Tanh() }
}

// ReLU returns the rectified linear activation.
func ReLU[T numeric.Float, V Scalar[T, V]]() Activation[V] {
	return func(v V) V { return v.ReLU() }
}
