package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/scalar/internal/numeric"
)

// Initializer draws the initial value of a weight or bias.
// fanIn and fanOut describe the layer the parameter belongs to.
type Initializer[T numeric.Float] func(rng *rand.Rand, fanIn, fanOut int) T

// Uniform draws from U(lo, hi) regardless of layer size.
func Uniform[T numeric.Float](lo, hi T) Initializer[T] {
	return func(rng *rand.Rand, _, _ int) T {
		return numeric.Uniform(rng, lo, hi)
	}
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which keeps activation variance roughly constant across tanh layers.
func Xavier[T numeric.Float]() Initializer[T] {
	return func(rng *rand.Rand, fanIn, fanOut int) T {
		bound := T(math.Sqrt(6.0 / float64(fanIn+fanOut)))
		return numeric.Uniform(rng, -bound, bound)
	}
}

// Zeros initializes every parameter to zero.
func Zeros[T numeric.Float]() Initializer[T] {
	return func(*rand.Rand, int, int) T { return 0 }
}

// DefaultInit draws from U(-1, 1).
func DefaultInit[T numeric.Float]() Initializer[T] {
	return Uniform[T](-1, 1)
}

// newRand returns a randomly seeded generator for callers that did not pass one.
func newRand() *rand.Rand {
	//nolint:gosec // Weight initialization, not security-critical.
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
