// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides scalar reverse-mode automatic differentiation with
// shared node ownership.
//
// Nodes point directly at their parents and are reclaimed by the garbage
// collector once nothing references them. Use it when individual graphs are
// small or long-lived; use package autodiff for predictable bulk teardown of
// per-iteration memory.
//
// Example:
//
//	g := graph.New[float64]()
//	x := g.Alloc(0.5)
//	y := x.Tanh().Mul(x)
//	g.Backward(y)
//	fmt.Println(x.Grad())
package graph

import (
	"github.com/born-ml/scalar/internal/graph"
	"github.com/born-ml/scalar/internal/numeric"
)

// Graph tracks the nodes created for one model.
type Graph[T numeric.Float] = graph.Graph[T]

// Node is a scalar vertex of the computation graph.
type Node[T numeric.Float] = graph.Node[T]

// New creates an empty graph.
func New[T numeric.Float]() *Graph[T] {
	return graph.New[T]()
}

// Add returns x + y.
func Add[T numeric.Float](x, y *Node[T]) *Node[T] { return graph.Add(x, y) }

// Sub returns x - y.
func Sub[T numeric.Float](x, y *Node[T]) *Node[T] { return graph.Sub(x, y) }

// Mul returns x * y.
func Mul[T numeric.Float](x, y *Node[T]) *Node[T] { return graph.Mul(x, y) }

// Div returns x / y.
func Div[T numeric.Float](x, y *Node[T]) *Node[T] { return graph.Div(x, y) }

// Pow returns x ** y.
func Pow[T numeric.Float](x, y *Node[T]) *Node[T] { return graph.Pow(x, y) }

// Neg returns -x.
func Neg[T numeric.Float](x *Node[T]) *Node[T] { return graph.Neg(x) }

// Exp returns e ** x.
func Exp[T numeric.Float](x *Node[T]) *Node[T] { return graph.Exp(x) }

// Log returns ln(x).
func Log[T numeric.Float](x *Node[T]) *Node[T] { return graph.Log(x) }

// Tanh returns tanh(x).
func Tanh[T numeric.Float](x *Node[T]) *Node[T] { return graph.Tanh(x) }

// ReLU returns max(x, 0).
func ReLU[T numeric.Float](x *Node[T]) *Node[T] { return graph.ReLU(x) }
