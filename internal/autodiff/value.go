package autodiff

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Value is a node of the computation graph.
//
// Leaves carry only data and gradient. Derived nodes also record the operator
// that produced them and up to two parent handles, ordered as the operator
// consumed them.
type Value[T numeric.Float] struct {
	data    T
	grad    T
	kind    ops.Kind
	parents [2]Handle[T]
}

// Data returns the forward value.
func (v *Value[T]) Data() T {
	return v.data
}

// Grad returns the accumulated gradient.
func (v *Value[T]) Grad() T {
	return v.grad
}

// Op returns the operator that produced the node, ops.Leaf for leaves.
func (v *Value[T]) Op() ops.Kind {
	return v.kind
}

// IsLeaf reports whether the node has no parents.
func (v *Value[T]) IsLeaf() bool {
	return v.kind.IsLeaf()
}

// Parents returns the parent handles in operand order.
func (v *Value[T]) Parents() []Handle[T] {
	return v.parents[:v.kind.Arity()]
}

// AddGrad accumulates delta into the gradient.
func (v *Value[T]) AddGrad(delta T) {
	v.grad += delta
}

// ZeroGrad resets the gradient to zero.
func (v *Value[T]) ZeroGrad() {
	v.grad = 0
}

// Step applies one gradient-descent update, data -= lr * grad, and then
// resets the gradient to zero.
func (v *Value[T]) Step(lr T) {
	v.data -= lr * v.grad
	v.grad = 0
}

// SetData overwrites the forward value. It is meant for leaves; dependent
// nodes keep the value they were computed with.
func (v *Value[T]) SetData(data T) {
	v.data = data
}

// String implements fmt.Stringer.
func (v *Value[T]) String() string {
	return fmt.Sprintf("Value(%s, data=%v, grad=%v)", v.kind, v.data, v.grad)
}
