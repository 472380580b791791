// Package numeric provides the scalar element types supported by the engine.
//
// Every graph component is generic over Float. The helpers in this package
// route transcendental functions through package math in float64 and convert
// back, so float32 graphs see the same formulas with single precision storage.
package numeric

import (
	"math"
	"math/rand/v2"
)

// Float is a constraint for supported scalar types.
type Float interface {
	~float32 | ~float64
}

// Zero returns the additive identity.
func Zero[T Float]() T {
	return 0
}

// One returns the multiplicative identity.
func One[T Float]() T {
	return 1
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
//
// Log(0) is -Inf and Log of a negative number is NaN.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	return T(math.Tanh(float64(x)))
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Max returns the larger of x and y.
func Max[T Float](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Uniform draws a value from the half-open interval [lo, hi).
func Uniform[T Float](rng *rand.Rand, lo, hi T) T {
	//nolint:gosec // Parameter initialisation, not security-critical.
	return lo + (hi-lo)*T(rng.Float64())
}
