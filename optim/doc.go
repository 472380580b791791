// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent parameter updates.
//
// Example:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig[float64]{LR: 0.15})
//	arena.Backward(loss)
//	optimizer.Step()
//	arena.ClearTemps()
package optim
