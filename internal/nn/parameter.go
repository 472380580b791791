package nn

import "github.com/born-ml/scalar/internal/numeric"

// Parameter is a trainable leaf of a network.
//
// Example:
//
//	w := nn.NewParameter("layer0.neuron1.w0", arena.Alloc(0.3))
//	...
//	w.Step(0.1)
type Parameter[T numeric.Float, V Scalar[T, V]] struct {
	name  string
	value V
}

// NewParameter wraps a leaf handle as a named parameter.
func NewParameter[T numeric.Float, V Scalar[T, V]](name string, value V) *Parameter[T, V] {
	return &Parameter[T, V]{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter[T, V]) Name() string {
	return p.name
}

// Value returns the underlying node handle.
func (p *Parameter[T, V]) Value() V {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter[T, V]) Data() T {
	return p.value.Data()
}

// SetData overwrites the parameter value.
func (p *Parameter[T, V]) SetData(data T) {
	p.value.SetData(data)
}

// Grad returns the accumulated gradient.
func (p *Parameter[T, V]) Grad() T {
	return p.value.Grad()
}

// ZeroGrad clears the gradient.
func (p *Parameter[T, V]) ZeroGrad() {
	p.value.ZeroGrad()
}

// Step applies data -= lr * grad and clears the gradient.
func (p *Parameter[T, V]) Step(lr T) {
	p.value.Step(lr)
}
