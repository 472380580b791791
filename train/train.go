// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch gradient-descent training loops.
//
// Example:
//
//	arena := autodiff.New[float64]()
//	mlp := nn.NewMLP(arena, []int{2, 3, 1}, nn.Tanh[float64, autodiff.Handle[float64]](), rng)
//	trainer, err := train.New[float64, autodiff.Handle[float64]](arena, mlp, train.XOR[float64](),
//	    train.Config[float64]{LR: 0.15, Iterations: 2000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	trainer.Run()
//	fmt.Println(trainer.MaxError())
package train

import (
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/numeric"
	"github.com/born-ml/scalar/internal/train"
)

// Sample is one input vector with its expected output vector.
type Sample[T numeric.Float] = train.Sample[T]

// Dataset is an ordered list of samples.
type Dataset[T numeric.Float] = train.Dataset[T]

// Config holds the training hyperparameters.
type Config[T numeric.Float] = train.Config[T]

// Trainer runs full-batch gradient descent on a model.
type Trainer[T numeric.Float, V nn.Scalar[T, V]] = train.Trainer[T, V]

// Sentinel errors.
var (
	ErrEmptyDataset   = train.ErrEmptyDataset
	ErrInvalidDataset = train.ErrInvalidDataset
	ErrInvalidConfig  = train.ErrInvalidConfig
)

// XOR returns the four exclusive-or pairs.
func XOR[T numeric.Float]() Dataset[T] {
	return train.XOR[T]()
}

// New creates a trainer.
func New[T numeric.Float, V nn.Scalar[T, V]](
	store nn.Store[T, V],
	model nn.Module[T, V],
	data Dataset[T],
	config Config[T],
) (*Trainer[T, V], error) {
	return train.New(store, model, data, config)
}
