// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/numeric"
	"github.com/born-ml/scalar/internal/serialization"
)

// Scalar is the contract of a graph node handle.
type Scalar[T numeric.Float, V any] = nn.Scalar[T, V]

// Store is the contract of a graph store.
type Store[T numeric.Float, V any] = nn.Store[T, V]

// Module is implemented by every network component with trainable state.
type Module[T numeric.Float, V Scalar[T, V]] = nn.Module[T, V]

// Parameter is a named trainable leaf.
type Parameter[T numeric.Float, V Scalar[T, V]] = nn.Parameter[T, V]

// NewParameter wraps a leaf handle as a named parameter.
func NewParameter[T numeric.Float, V Scalar[T, V]](name string, value V) *Parameter[T, V] {
	return nn.NewParameter[T](name, value)
}

// Activation maps a pre-activation node to its activated node.
type Activation[V any] = nn.Activation[V]

// Tanh returns the hyperbolic tangent activation.
func Tanh[T numeric.Float, V Scalar[T, V]]() Activation[V] { return nn.Tanh[T, V]() }

// ReLU returns the rectified linear activation.
func ReLU[T numeric.Float, V Scalar[T, V]]() Activation[V] { return nn.ReLU[T, V]() }

// Layers

// Neuron computes activation(sum_i w_i*x_i + b).
type Neuron[T numeric.Float, V Scalar[T, V]] = nn.Neuron[T, V]

// NewNeuron creates a neuron with nin weights drawn from U(-1, 1).
func NewNeuron[T numeric.Float, V Scalar[T, V]](store Store[T, V], nin int, activation Activation[V], rng *rand.Rand) *Neuron[T, V] {
	return nn.NewNeuron(store, nin, activation, rng)
}

// Layer is a set of neurons sharing the same inputs.
type Layer[T numeric.Float, V Scalar[T, V]] = nn.Layer[T, V]

// NewLayer creates nout neurons with nin inputs each.
func NewLayer[T numeric.Float, V Scalar[T, V]](store Store[T, V], nin, nout int, activation Activation[V], rng *rand.Rand) *Layer[T, V] {
	return nn.NewLayer(store, nin, nout, activation, rng)
}

// MLP chains layers.
type MLP[T numeric.Float, V Scalar[T, V]] = nn.MLP[T, V]

// MLPConfig configures a multi-layer perceptron.
type MLPConfig[T numeric.Float, V Scalar[T, V]] = nn.MLPConfig[T, V]

// NewMLP creates a network with layer widths sizes.
//
// Example:
//
//	mlp := nn.NewMLP(arena, []int{2, 3, 1}, nn.Tanh[float64, autodiff.Handle[float64]](), rng)
func NewMLP[T numeric.Float, V Scalar[T, V]](store Store[T, V], sizes []int, activation Activation[V], rng *rand.Rand) *MLP[T, V] {
	return nn.NewMLP(store, sizes, activation, rng)
}

// NewMLPFromConfig creates a network from config.
func NewMLPFromConfig[T numeric.Float, V Scalar[T, V]](store Store[T, V], config MLPConfig[T, V]) *MLP[T, V] {
	return nn.NewMLPFromConfig(store, config)
}

// Initialization

// Initializer draws the initial value of a weight or bias.
type Initializer[T numeric.Float] = nn.Initializer[T]

// Uniform draws from U(lo, hi).
func Uniform[T numeric.Float](lo, hi T) Initializer[T] { return nn.Uniform(lo, hi) }

// Xavier draws from the Glorot uniform distribution.
func Xavier[T numeric.Float]() Initializer[T] { return nn.Xavier[T]() }

// Zeros initializes every parameter to zero.
func Zeros[T numeric.Float]() Initializer[T] { return nn.Zeros[T]() }

// Loss functions

// MSE builds the summed squared error between outputs and targets.
func MSE[T numeric.Float, V Scalar[T, V]](store Store[T, V], outputs, targets []V) V {
	return nn.MSE(store, outputs, targets)
}

// SquaredError adds the squared error of outputs against targets to acc.
func SquaredError[T numeric.Float, V Scalar[T, V]](acc V, outputs, targets []V) V {
	return nn.SquaredError[T](acc, outputs, targets)
}

// Checkpoints

// StateDict returns the current value of every parameter of m.
func StateDict[T numeric.Float, V Scalar[T, V]](m Module[T, V]) []serialization.Entry {
	return nn.StateDict(m)
}

// LoadStateDict assigns entries to the parameters of m by name.
func LoadStateDict[T numeric.Float, V Scalar[T, V]](m Module[T, V], entries []serialization.Entry) error {
	return nn.LoadStateDict(m, entries)
}

// SaveModule writes the parameter values of m to path.
func SaveModule[T numeric.Float, V Scalar[T, V]](path string, m Module[T, V], metadata map[string]string) error {
	return nn.SaveModule(path, m, metadata)
}

// LoadModule assigns the values stored at path to the parameters of m.
func LoadModule[T numeric.Float, V Scalar[T, V]](path string, m Module[T, V]) (*serialization.Header, error) {
	return nn.LoadModule(path, m)
}

// Checkpoint errors.
var (
	ErrMissingParameter    = nn.ErrMissingParameter
	ErrUnexpectedParameter = nn.ErrUnexpectedParameter
)
