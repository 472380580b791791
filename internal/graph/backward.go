package graph

import (
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Backward propagates gradients from root to every node it depends on.
//
// The gradient of every derived node in root's ancestry is cleared and the
// root gradient is set to one, overwriting any previous value. Nodes are then
// visited in reverse topological order and each derived node adds its
// backward-rule contributions to its parents. Leaf gradients accumulate: a
// second pass without ZeroGrads adds exactly one more pass's contribution.
func (g *Graph[T]) Backward(root *Node[T]) {
	if root == nil {
		panic("graph: nil root")
	}
	if root.graph != g {
		panic("graph: root belongs to a different graph")
	}

	order := topoSort(root)
	for _, n := range order {
		if !n.kind.IsLeaf() {
			n.grad = 0
		}
	}
	root.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.kind.IsLeaf() {
			continue
		}
		propagate(n)
	}
}

func propagate[T numeric.Float](n *Node[T]) {
	x := n.parents[0]
	var yv T
	if n.parents[1] != nil {
		yv = n.parents[1].data
	}
	dx, dy := ops.Backward(n.kind, n.grad, n.data, x.data, yv)
	x.AddGrad(dx)
	if n.parents[1] != nil {
		n.parents[1].AddGrad(dy)
	}
}

// topoSort returns root's ancestry in post-order: every node appears after
// all of its parents. It uses an explicit stack so long chains cannot
// overflow the goroutine stack.
func topoSort[T numeric.Float](root *Node[T]) []*Node[T] {
	type frame struct {
		node     *Node[T]
		expanded bool
	}

	var order []*Node[T]
	visited := make(map[*Node[T]]struct{})
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			order = append(order, top.node)
			continue
		}
		if _, seen := visited[top.node]; seen {
			continue
		}
		visited[top.node] = struct{}{}

		stack = append(stack, frame{node: top.node, expanded: true})
		for _, p := range top.node.Parents() {
			if _, seen := visited[p]; !seen {
				stack = append(stack, frame{node: p})
			}
		}
	}
	return order
}
