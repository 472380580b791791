package autodiff

import (
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Add returns a node holding x + y.
func Add[T numeric.Float](x, y Handle[T]) Handle[T] {
	return binary(ops.Add, x, y)
}

// Sub returns a node holding x - y, built as x + (-y).
func Sub[T numeric.Float](x, y Handle[T]) Handle[T] {
	sameArena(x, y)
	return Add(x, Neg(y))
}

// Mul returns a node holding x * y.
func Mul[T numeric.Float](x, y Handle[T]) Handle[T] {
	return binary(ops.Mul, x, y)
}

// Div returns a node holding x / y.
func Div[T numeric.Float](x, y Handle[T]) Handle[T] {
	return binary(ops.Div, x, y)
}

// Pow returns a node holding x ** y.
//
// The gradient with respect to y involves ln(x). For x <= 0 it is NaN and the
// NaN propagates into y's gradient; the engine does not check this.
func Pow[T numeric.Float](x, y Handle[T]) Handle[T] {
	return binary(ops.Pow, x, y)
}

// Neg returns a node holding -x.
func Neg[T numeric.Float](x Handle[T]) Handle[T] {
	return unary(ops.Neg, x)
}

// Exp returns a node holding e ** x.
func Exp[T numeric.Float](x Handle[T]) Handle[T] {
	return unary(ops.Exp, x)
}

// Log returns a node holding ln(x). Non-positive x yields -Inf or NaN.
func Log[T numeric.Float](x Handle[T]) Handle[T] {
	return unary(ops.Log, x)
}

// Tanh returns a node holding tanh(x).
func Tanh[T numeric.Float](x Handle[T]) Handle[T] {
	return unary(ops.Tanh, x)
}

// ReLU returns a node holding max(x, 0).
func ReLU[T numeric.Float](x Handle[T]) Handle[T] {
	return unary(ops.ReLU, x)
}

// Add returns h + other.
func (h Handle[T]) Add(other Handle[T]) Handle[T] { return Add(h, other) }

// Sub returns h - other.
func (h Handle[T]) Sub(other Handle[T]) Handle[T] { return Sub(h, other) }

// Mul returns h * other.
func (h Handle[T]) Mul(other Handle[T]) Handle[T] { return Mul(h, other) }

// Div returns h / other.
func (h Handle[T]) Div(other Handle[T]) Handle[T] { return Div(h, other) }

// Pow returns h ** other.
func (h Handle[T]) Pow(other Handle[T]) Handle[T] { return Pow(h, other) }

// Neg returns -h.
func (h Handle[T]) Neg() Handle[T] { return Neg(h) }

// Exp returns e ** h.
func (h Handle[T]) Exp() Handle[T] { return Exp(h) }

// Log returns ln(h).
func (h Handle[T]) Log() Handle[T] { return Log(h) }

// Tanh returns tanh(h).
func (h Handle[T]) Tanh() Handle[T] { return Tanh(h) }

// ReLU returns max(h, 0).
func (h Handle[T]) ReLU() Handle[T] { return ReLU(h) }

func binary[T numeric.Float](kind ops.Kind, x, y Handle[T]) Handle[T] {
	a := sameArena(x, y)
	out := ops.Forward(kind, a.resolve(x).data, a.resolve(y).data)
	return a.allocDerived(out, kind, x, y)
}

func unary[T numeric.Float](kind ops.Kind, x Handle[T]) Handle[T] {
	a := x.owner()
	out := ops.Forward(kind, a.resolve(x).data, 0)
	return a.allocDerived(out, kind, x, Handle[T]{})
}

// sameArena returns the arena shared by x and y.
// Mixing arenas is a programming error and panics.
func sameArena[T numeric.Float](x, y Handle[T]) *Arena[T] {
	a := x.owner()
	if y.owner() != a {
		panic("autodiff: operands belong to different arenas")
	}
	return a
}
