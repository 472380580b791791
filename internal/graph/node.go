package graph

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Node is a scalar vertex of the computation graph.
type Node[T numeric.Float] struct {
	data    T
	grad    T
	kind    ops.Kind
	parents [2]*Node[T]
	graph   *Graph[T]
}

// Data returns the forward value.
func (n *Node[T]) Data() T {
	return n.data
}

// Grad returns the accumulated gradient.
func (n *Node[T]) Grad() T {
	return n.grad
}

// Op returns the operator that produced the node, ops.Leaf for leaves.
func (n *Node[T]) Op() ops.Kind {
	return n.kind
}

// IsLeaf reports whether the node has no parents.
func (n *Node[T]) IsLeaf() bool {
	return n.kind.IsLeaf()
}

// Parents returns the parent nodes in operand order.
func (n *Node[T]) Parents() []*Node[T] {
	return n.parents[:n.kind.Arity()]
}

// Graph returns the graph the node was created in.
func (n *Node[T]) Graph() *Graph[T] {
	return n.graph
}

// AddGrad accumulates delta into the gradient.
func (n *Node[T]) AddGrad(delta T) {
	n.grad += delta
}

// ZeroGrad resets the gradient to zero.
func (n *Node[T]) ZeroGrad() {
	n.grad = 0
}

// Step applies one gradient-descent update, data -= lr * grad, and then
// resets the gradient to zero.
func (n *Node[T]) Step(lr T) {
	n.data -= lr * n.grad
	n.grad = 0
}

// SetData overwrites the forward value. Nodes already derived from n keep
// the value they were computed with.
func (n *Node[T]) SetData(data T) {
	n.data = data
}

// Backward runs a backward pass rooted at n.
func (n *Node[T]) Backward() {
	n.graph.Backward(n)
}

// String implements fmt.Stringer.
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%s, data=%v, grad=%v)", n.kind, n.data, n.grad)
}
