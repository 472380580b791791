// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network building blocks over either
// autodiff store.
//
// # Overview
//
// This package contains:
//   - Neuron, Layer, MLP: activation(sum_i w_i*x_i + b), stacked
//   - Activations: Tanh, ReLU
//   - Loss functions: MSE, SquaredError
//   - Initialization: Uniform, Xavier, Zeros
//   - Checkpoints: SaveModule, LoadModule
//
// # Basic Usage
//
//	arena := autodiff.New[float64]()
//	rng := rand.New(rand.NewPCG(1, 2))
//	mlp := nn.NewMLP(arena, []int{2, 3, 1}, nn.Tanh[float64, autodiff.Handle[float64]](), rng)
//
//	x := []autodiff.Handle[float64]{arena.Alloc(1), arena.Alloc(0)}
//	loss := nn.MSE(arena, mlp.Forward(x), []autodiff.Handle[float64]{arena.Alloc(1)})
//	arena.Backward(loss)
//	mlp.Step(0.1)
//	arena.ClearTemps()
package nn
