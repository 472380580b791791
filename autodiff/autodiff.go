// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation
// backed by an arena.
//
// An Arena owns every node. Inputs and parameters live in its permanent pool;
// the nodes of one forward pass live in its temporary pool and are released
// together by ClearTemps. Nodes are addressed by lightweight Handles.
//
// Example:
//
//	import "github.com/born-ml/scalar/autodiff"
//
//	func main() {
//	    arena := autodiff.New[float64]()
//	    a := arena.Alloc(3.0)
//	    b := arena.Alloc(2.0)
//	    c := a.Pow(b).Add(a) // 3^2 + 3
//
//	    arena.Backward(c)
//	    fmt.Println(a.Grad()) // 2*3 + 1 = 7
//
//	    arena.ClearTemps()
//	}
package autodiff

import (
	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Float is the constraint for supported scalar types (float32, float64).
type Float = numeric.Float

// Op identifies the operator that produced a node.
type Op = ops.Kind

// Operators.
const (
	OpLeaf = ops.Leaf
	OpAdd  = ops.Add
	OpMul  = ops.Mul
	OpNeg  = ops.Neg
	OpPow  = ops.Pow
	OpDiv  = ops.Div
	OpExp  = ops.Exp
	OpLog  = ops.Log
	OpTanh = ops.Tanh
	OpReLU = ops.ReLU
)

// Arena owns the nodes of a computation graph.
type Arena[T Float] = autodiff.Arena[T]

// Handle references a node owned by an Arena.
type Handle[T Float] = autodiff.Handle[T]

// Value is a node of the computation graph.
type Value[T Float] = autodiff.Value[T]

// Phase is the state of an arena's backward pass.
type Phase = autodiff.Phase

// Backward pass phases.
const (
	Idle        = autodiff.Idle
	Seeded      = autodiff.Seeded
	Propagating = autodiff.Propagating
	Done        = autodiff.Done
)

// New creates an empty arena.
func New[T Float]() *Arena[T] {
	return autodiff.New[T]()
}

// Add returns x + y.
func Add[T Float](x, y Handle[T]) Handle[T] { return autodiff.Add(x, y) }

// Sub returns x - y.
func Sub[T Float](x, y Handle[T]) Handle[T] { return autodiff.Sub(x, y) }

// Mul returns x * y.
func Mul[T Float](x, y Handle[T]) Handle[T] { return autodiff.Mul(x, y) }

// Div returns x / y.
func Div[T Float](x, y Handle[T]) Handle[T] { return autodiff.Div(x, y) }

// Pow returns x ** y. x must be positive for the gradient with respect to y
// to be finite.
func Pow[T Float](x, y Handle[T]) Handle[T] { return autodiff.Pow(x, y) }

// Neg returns -x.
func Neg[T Float](x Handle[T]) Handle[T] { return autodiff.Neg(x) }

// Exp returns e ** x.
func Exp[T Float](x Handle[T]) Handle[T] { return autodiff.Exp(x) }

// Log returns ln(x).
func Log[T Float](x Handle[T]) Handle[T] { return autodiff.Log(x) }

// Tanh returns tanh(x).
func Tanh[T Float](x Handle[T]) Handle[T] { return autodiff.Tanh(x) }

// ReLU returns max(x, 0).
func ReLU[T Float](x Handle[T]) Handle[T] { return autodiff.ReLU(x) }
