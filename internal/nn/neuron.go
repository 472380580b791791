package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalar/internal/numeric"
)

// Neuron computes activation(sum_i w_i*x_i + b).
type Neuron[T numeric.Float, V Scalar[T, V]] struct {
	weights    []*Parameter[T, V]
	bias       *Parameter[T, V]
	activation Activation[V]
}

// NewNeuron creates a neuron with nin weights drawn from U(-1, 1).
// A nil rng uses a randomly seeded generator.
func NewNeuron[T numeric.Float, V Scalar[T, V]](store Store[T, V], nin int, activation Activation[V], rng *rand.Rand) *Neuron[T, V] {
	if rng == nil {
		rng = newRand()
	}
	return newNeuron(store, "neuron", nin, 1, activation, DefaultInit[T](), rng)
}

func newNeuron[T numeric.Float, V Scalar[T, V]](
	store Store[T, V],
	name string,
	nin, fanOut int,
	activation Activation[V],
	initFn Initializer[T],
	rng *rand.Rand,
) *Neuron[T, V] {
	if nin <= 0 {
		panic(fmt.Sprintf("nn: neuron needs at least one input, got %d", nin))
	}
	weights := make([]*Parameter[T, V], nin)
	for i := range weights {
		w := store.Alloc(initFn(rng, nin, fanOut))
		weights[i] = NewParameter[T](fmt.Sprintf("%s.w%d", name, i), w)
	}
	b := store.Alloc(initFn(rng, nin, fanOut))

	return &Neuron[T, V]{
		weights:    weights,
		bias:       NewParameter[T](name+".b", b),
		activation: activation,
	}
}

// Forward evaluates the neuron on inputs.
//
// The weighted sum starts from the bias and adds w_i*x_i in input order.
// Forward panics if len(inputs) differs from the number of weights.
func (n *Neuron[T, V]) Forward(inputs []V) V {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}
	sum := n.bias.Value()
	for i, w := range n.weights {
		sum = sum.Add(w.Value().Mul(inputs[i]))
	}
	if n.activation == nil {
		return sum
	}
	return n.activation(sum)
}

// Weights returns the weight parameters in input order.
func (n *Neuron[T, V]) Weights() []*Parameter[T, V] {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron[T, V]) Bias() *Parameter[T, V] {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron[T, V]) Parameters() []*Parameter[T, V] {
	params := make([]*Parameter[T, V], 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
