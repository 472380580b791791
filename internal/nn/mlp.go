package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalar/internal/numeric"
)

// MLPConfig configures a multi-layer perceptron.
type MLPConfig[T numeric.Float, V Scalar[T, V]] struct {
	Sizes      []int          // Layer widths including the input width, e.g. {2, 3, 1}
	Activation Activation[V]  // Applied by every layer (nil: identity)
	Init       Initializer[T] // Weight and bias initializer (default: U(-1, 1))
	Rand       *rand.Rand     // Random source (default: randomly seeded PCG)
}

// MLP chains layers so that each layer's outputs feed the next layer.
//
// Example:
//
//	arena := autodiff.New[float64]()
//	mlp := nn.NewMLP(arena, []int{2, 3, 1}, nn.Tanh[float64, autodiff.Handle[float64]](), rng)
//	out := mlp.Forward(inputs)
type MLP[T numeric.Float, V Scalar[T, V]] struct {
	layers []*Layer[T, V]
}

// NewMLP creates a network with layer widths sizes, all layers using activation.
func NewMLP[T numeric.Float, V Scalar[T, V]](store Store[T, V], sizes []int, activation Activation[V], rng *rand.Rand) *MLP[T, V] {
	return NewMLPFromConfig(store, MLPConfig[T, V]{
		Sizes:      sizes,
		Activation: activation,
		Rand:       rng,
	})
}

// NewMLPFromConfig creates a network from config.
//
// Parameters are allocated layer by layer, neuron by neuron, weights before
// bias, so a seeded Rand reproduces the same network.
func NewMLPFromConfig[T numeric.Float, V Scalar[T, V]](store Store[T, V], config MLPConfig[T, V]) *MLP[T, V] {
	if len(config.Sizes) < 2 {
		panic(fmt.Sprintf("nn: MLP needs at least input and output sizes, got %v", config.Sizes))
	}
	if config.Init == nil {
		config.Init = DefaultInit[T]()
	}
	if config.Rand == nil {
		config.Rand = newRand()
	}

	layers := make([]*Layer[T, V], len(config.Sizes)-1)
	for i := range layers {
		layers[i] = newLayer(store, fmt.Sprintf("layer%d", i),
			config.Sizes[i], config.Sizes[i+1], config.Activation, config.Init, config.Rand)
	}
	return &MLP[T, V]{layers: layers}
}

// Forward applies every layer in sequence.
func (m *MLP[T, V]) Forward(inputs []V) []V {
	out := inputs
	for _, l := range m.layers {
		out = l.Forward(out)
	}
	return out
}

// Layers returns the layers in evaluation order.
func (m *MLP[T, V]) Layers() []*Layer[T, V] {
	return m.layers
}

// Parameters returns every weight and bias.
func (m *MLP[T, V]) Parameters() []*Parameter[T, V] {
	var params []*Parameter[T, V]
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// NumParameters returns the number of trainable scalars.
func (m *MLP[T, V]) NumParameters() int {
	n := 0
	for _, l := range m.layers {
		n += l.OutFeatures() * (l.InFeatures() + 1)
	}
	return n
}

// Step applies a gradient-descent step to every parameter.
func (m *MLP[T, V]) Step(lr T) {
	for _, p := range m.Parameters() {
		p.Step(lr)
	}
}

// ZeroGrad clears the gradient of every parameter.
func (m *MLP[T, V]) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// String summarises the layer widths.
func (m *MLP[T, V]) String() string {
	sizes := make([]int, 0, len(m.layers)+1)
	if len(m.layers) > 0 {
		sizes = append(sizes, m.layers[0].InFeatures())
	}
	for _, l := range m.layers {
		sizes = append(sizes, l.OutFeatures())
	}
	return fmt.Sprintf("MLP%v", sizes)
}
