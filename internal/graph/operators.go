package graph

import (
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Add returns a node holding x + y.
func Add[T numeric.Float](x, y *Node[T]) *Node[T] { return binary(ops.Add, x, y) }

// Sub returns a node holding x - y, built as x + (-y).
func Sub[T numeric.Float](x, y *Node[T]) *Node[T] {
	sameGraph(x, y)
	return Add(x, Neg(y))
}

// Mul returns a node holding x * y.
func Mul[T numeric.Float](x, y *Node[T]) *Node[T] { return binary(ops.Mul, x, y) }

// Div returns a node holding x / y.
func Div[T numeric.Float](x, y *Node[T]) *Node[T] { return binary(ops.Div, x, y) }

// Pow returns a node holding x ** y. The gradient for y is NaN when x <= 0.
func Pow[T numeric.Float](x, y *Node[T]) *Node[T] { return binary(ops.Pow, x, y) }

// Neg returns a node holding -x.
func Neg[T numeric.Float](x *Node[T]) *Node[T] { return unary(ops.Neg, x) }

// Exp returns a node holding e ** x.
func Exp[T numeric.Float](x *Node[T]) *Node[T] { return unary(ops.Exp, x) }

// Log returns a node holding ln(x). Non-positive x yields -Inf or NaN.
func Log[T numeric.Float](x *Node[T]) *Node[T] { return unary(ops.Log, x) }

// Tanh returns a node holding tanh(x).
func Tanh[T numeric.Float](x *Node[T]) *Node[T] { return unary(ops.Tanh, x) }

// ReLU returns a node holding max(x, 0).
func ReLU[T numeric.Float](x *Node[T]) *Node[T] { return unary(ops.ReLU, x) }

// Add returns n + other.
func (n *Node[T]) Add(other *Node[T]) *Node[T] { return Add(n, other) }

// Sub returns n - other.
func (n *Node[T]) Sub(other *Node[T]) *Node[T] { return Sub(n, other) }

// Mul returns n * other.
func (n *Node[T]) Mul(other *Node[T]) *Node[T] { return Mul(n, other) }

// Div returns n / other.
func (n *Node[T]) Div(other *Node[T]) *Node[T] { return Div(n, other) }

// Pow returns n ** other.
func (n *Node[T]) Pow(other *Node[T]) *Node[T] { return Pow(n, other) }

// Neg returns -n.
func (n *Node[T]) Neg() *Node[T] { return Neg(n) }

// Exp returns e ** n.
func (n *Node[T]) Exp() *Node[T] { return Exp(n) }

// Log returns ln(n).
func (n *Node[T]) Log() *Node[T] { return Log(n) }

// Tanh returns tanh(n).
func (n *Node[T]) Tanh() *Node[T] { return Tanh(n) }

// ReLU returns max(n, 0).
func (n *Node[T]) ReLU() *Node[T] { return ReLU(n) }

func binary[T numeric.Float](kind ops.Kind, x, y *Node[T]) *Node[T] {
	g := sameGraph(x, y)
	return g.derive(ops.Forward(kind, x.data, y.data), kind, x, y)
}

func unary[T numeric.Float](kind ops.Kind, x *Node[T]) *Node[T] {
	if x == nil {
		panic("graph: nil operand")
	}
	return x.graph.derive(ops.Forward(kind, x.data, 0), kind, x, nil)
}

// sameGraph returns the graph shared by x and y.
// Mixing graphs is a programming error and panics.
func sameGraph[T numeric.Float](x, y *Node[T]) *Graph[T] {
	if x == nil || y == nil {
		panic("graph: nil operand")
	}
	if x.graph != y.graph {
		panic("graph: operands belong to different graphs")
	}
	return x.graph
}
