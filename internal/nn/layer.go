package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalar/internal/numeric"
)

// Layer is a set of neurons sharing the same inputs.
//
// Example:
//
//	layer := nn.NewLayer(arena, 2, 3, nn.Tanh[float64, autodiff.Handle[float64]](), rng)
//	outputs := layer.Forward(inputs) // len(outputs) == 3
type Layer[T numeric.Float, V Scalar[T, V]] struct {
	nin     int
	neurons []*Neuron[T, V]
}

// NewLayer creates nout neurons with nin inputs each, initialized from U(-1, 1).
// A nil rng uses a randomly seeded generator.
func NewLayer[T numeric.Float, V Scalar[T, V]](store Store[T, V], nin, nout int, activation Activation[V], rng *rand.Rand) *Layer[T, V] {
	if rng == nil {
		rng = newRand()
	}
	return newLayer(store, "layer", nin, nout, activation, DefaultInit[T](), rng)
}

func newLayer[T numeric.Float, V Scalar[T, V]](
	store Store[T, V],
	name string,
	nin, nout int,
	activation Activation[V],
	initFn Initializer[T],
	rng *rand.Rand,
) *Layer[T, V] {
	if nout <= 0 {
		panic(fmt.Sprintf("nn: layer needs at least one neuron, got %d", nout))
	}
	neurons := make([]*Neuron[T, V], nout)
	for i := range neurons {
		neurons[i] = newNeuron(store, fmt.Sprintf("%s.neuron%d", name, i), nin, nout, activation, initFn, rng)
	}
	return &Layer[T, V]{nin: nin, neurons: neurons}
}

// Forward evaluates every neuron on the same inputs.
func (l *Layer[T, V]) Forward(inputs []V) []V {
	out := make([]V, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(inputs)
	}
	return out
}

// Neurons returns the neurons in output order.
func (l *Layer[T, V]) Neurons() []*Neuron[T, V] {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer[T, V]) InFeatures() int {
	return l.nin
}

// OutFeatures returns the number of outputs.
func (l *Layer[T, V]) OutFeatures() int {
	return len(l.neurons)
}

// Parameters returns the parameters of every neuron.
func (l *Layer[T, V]) Parameters() []*Parameter[T, V] {
	var params []*Parameter[T, V]
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
