// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/numeric"
	"github.com/born-ml/scalar/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer[T numeric.Float] = optim.Optimizer[T]

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = optim.DefaultLR

// SGD represents the plain gradient-descent optimizer.
type SGD[T numeric.Float, V nn.Scalar[T, V]] = optim.SGD[T, V]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig[T numeric.Float] = optim.SGDConfig[T]

// NewSGD creates a new SGD optimizer.
func NewSGD[T numeric.Float, V nn.Scalar[T, V]](params []*nn.Parameter[T, V], config SGDConfig[T]) *SGD[T, V] {
	return optim.NewSGD(params, config)
}
