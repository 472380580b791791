package ops

import (
	"fmt"

	"github.com/born-ml/scalar/internal/numeric"
)

// Forward computes the value of a node produced by k from parent values a and b.
// b is ignored by unary operators.
//
// Domain preconditions are not checked: Log and Pow with a non-positive base
// yield NaN or an infinity exactly as package math does, and the value flows
// through the graph as ordinary data.
func Forward[T numeric.Float](k Kind, a, b T) T {
	switch k {
	case Add:
		return a + b
	case Mul:
		return a * b
	case Neg:
		return -a
	case Pow:
		return numeric.Pow(a, b)
	case Div:
		return a / b
	case Exp:
		return numeric.Exp(a)
	case Log:
		return numeric.Log(a)
	case Tanh:
		return numeric.Tanh(a)
	case ReLU:
		if a > 0 {
			return a
		}
		return 0
	default:
		panic(fmt.Sprintf("ops: no forward rule for %s", k))
	}
}

// Backward returns the gradient contributions for the parents of a node
// produced by k.
//
// g is the gradient accumulated at the node, y its forward value and a, b the
// current parent values. The second contribution is zero for unary operators.
//
//	add:  da = g                db = g
//	mul:  da = g*b              db = g*a
//	neg:  da = -g
//	pow:  da = g*b*y/a          db = g*y*ln(a)
//	div:  da = g/b              db = g*(-y)/b
//	exp:  da = g*y
//	log:  da = g/a
//	tanh: da = g*(1-y*y)
//	relu: da = g if a > 0 else 0
//
// Div uses the node value instead of recomputing a/b², and Pow's exponent
// derivative is NaN for a non-positive base.
func Backward[T numeric.Float](k Kind, g, y, a, b T) (da, db T) {
	switch k {
	case Add:
		return g, g
	case Mul:
		return g * b, g * a
	case Neg:
		return -g, 0
	case Pow:
		return g * b * y / a, g * y * numeric.Log(a)
	case Div:
		return g / b, g * -y / b
	case Exp:
		return g * y, 0
	case Log:
		return g / a, 0
	case Tanh:
		return g * (1 - y*y), 0
	case ReLU:
		if a > 0 {
			return g, 0
		}
		return 0, 0
	default:
		panic(fmt.Sprintf("ops: no backward rule for %s", k))
	}
}
