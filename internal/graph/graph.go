// Package graph implements scalar reverse-mode automatic differentiation with
// shared node ownership.
//
// Every derived Node holds direct pointers to its parents, so an output keeps
// its whole ancestry alive and the garbage collector frees a graph once the
// caller drops it. Graph is a registry: it owns the permanent leaves strongly
// and tracks temporary nodes through weak pointers, which lets ZeroGrads reach
// them without extending their lifetime.
//
// Backward builds a topological order with an explicit depth-first post-order
// traversal keyed by node identity, so shared ancestors and re-converging
// paths are finalised exactly once.
//
// A Graph is not safe for concurrent use.
package graph

import (
	"fmt"
	"math/rand/v2"
	"weak"

	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Graph tracks the nodes created for one model.
type Graph[T numeric.Float] struct {
	leaves []*Node[T]
	temps  []weak.Pointer[Node[T]]
}

// New creates an empty graph.
func New[T numeric.Float]() *Graph[T] {
	return &Graph[T]{}
}

// Alloc creates a permanent leaf. The graph keeps it alive.
func (g *Graph[T]) Alloc(data T) *Node[T] {
	n := &Node[T]{data: data, graph: g}
	g.leaves = append(g.leaves, n)
	return n
}

// AllocTemp creates a temporary leaf. It lives as long as something references it.
func (g *Graph[T]) AllocTemp(data T) *Node[T] {
	return g.track(&Node[T]{data: data, graph: g})
}

// AllocUniform creates a permanent leaf drawn uniformly from [lo, hi).
func (g *Graph[T]) AllocUniform(rng *rand.Rand, lo, hi T) *Node[T] {
	return g.Alloc(numeric.Uniform(rng, lo, hi))
}

// AllocOneHot creates size leaves that are all zero except the one at index.
// The leaves are temporary when temp is true.
func (g *Graph[T]) AllocOneHot(index, size int, temp bool) []*Node[T] {
	if index < 0 || index >= size {
		panic(fmt.Sprintf("graph: one-hot index %d out of range [0, %d)", index, size))
	}
	out := make([]*Node[T], size)
	for i := range out {
		var v T
		if i == index {
			v = 1
		}
		if temp {
			out[i] = g.AllocTemp(v)
		} else {
			out[i] = g.Alloc(v)
		}
	}
	return out
}

func (g *Graph[T]) derive(data T, kind ops.Kind, x, y *Node[T]) *Node[T] {
	return g.track(&Node[T]{
		data:    data,
		kind:    kind,
		parents: [2]*Node[T]{x, y},
		graph:   g,
	})
}

func (g *Graph[T]) track(n *Node[T]) *Node[T] {
	g.temps = append(g.temps, weak.Make(n))
	return n
}

// ZeroGrads resets the gradient of every permanent leaf and every temporary
// node that is still alive.
func (g *Graph[T]) ZeroGrads() {
	for _, n := range g.leaves {
		n.grad = 0
	}
	live := g.temps[:0]
	for _, wp := range g.temps {
		if n := wp.Value(); n != nil {
			n.grad = 0
			live = append(live, wp)
		}
	}
	clear(g.temps[len(live):])
	g.temps = live
}

// ClearTemps forgets every temporary node.
//
// Nodes still referenced by the caller stay valid, but the graph no longer
// reaches them; they are collected once the caller drops them.
func (g *Graph[T]) ClearTemps() {
	clear(g.temps)
	g.temps = g.temps[:0]
}

// NumPermanent returns the number of permanent leaves.
func (g *Graph[T]) NumPermanent() int {
	return len(g.leaves)
}

// NumTemporary returns the number of temporary nodes tracked since the last
// ClearTemps, including ones that have already been collected.
func (g *Graph[T]) NumTemporary() int {
	return len(g.temps)
}

// NumLive returns the number of tracked temporary nodes that are still alive.
func (g *Graph[T]) NumLive() int {
	live := 0
	for _, wp := range g.temps {
		if wp.Value() != nil {
			live++
		}
	}
	return live
}
