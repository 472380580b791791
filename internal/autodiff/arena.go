// Package autodiff implements scalar reverse-mode automatic differentiation
// on top of an arena.
//
// Architecture:
//   - Arena: owns every node in two pools. The permanent pool holds inputs and
//     parameters that live across training iterations; the temporary pool holds
//     the nodes of one forward pass and is discarded in bulk by ClearTemps.
//   - Handle: a non-owning key into an Arena (signed index, pool epoch and the
//     owning arena). Handles stay valid while the arena grows.
//   - Operators: each call computes the forward value from its parents and
//     appends a derived node recording the operator kind and parent handles.
//   - Backward: walks the temporary pool in reverse creation order. Parents are
//     always created before their children, so allocation order is already a
//     topological order and no sort is needed.
//
// Usage:
//
//	arena := autodiff.New[float64]()
//	x := arena.Alloc(3.0)
//	w := arena.Alloc(-2.0)
//	y := x.Mul(w).Tanh()
//	arena.Backward(y)
//	fmt.Println(x.Grad(), w.Grad())
//	arena.ClearTemps()
//
// An Arena is not safe for concurrent use. Use one arena per goroutine.
package autodiff

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Arena owns the nodes of a computation graph.
type Arena[T numeric.Float] struct {
	permanent []Value[T]
	temporary []Value[T]
	epoch     uint32 // incremented by ClearTemps
	phase     Phase
	reach     []bool // scratch marks reused across backward passes
}

// New creates an empty arena.
func New[T numeric.Float]() *Arena[T] {
	return &Arena[T]{
		permanent: make([]Value[T], 0, 64),
		temporary: make([]Value[T], 0, 256),
	}
}

// Alloc creates a permanent leaf holding data.
//
// Permanent leaves survive ClearTemps and are used for inputs, targets and
// trainable parameters.
func (a *Arena[T]) Alloc(data T) Handle[T] {
	id := int64(len(a.permanent))
	a.permanent = append(a.permanent, Value[T]{data: data})
	return Handle[T]{id: id, arena: a}
}

// AllocTemp creates a temporary leaf holding data.
//
// Temporary leaves are discarded by ClearTemps together with every derived node
// of the iteration. A typical use is a fresh loss accumulator.
func (a *Arena[T]) AllocTemp(data T) Handle[T] {
	return a.allocTemp(Value[T]{data: data})
}

// AllocUniform creates a permanent leaf drawn uniformly from [lo, hi).
func (a *Arena[T]) AllocUniform(rng *rand.Rand, lo, hi T) Handle[T] {
	return a.Alloc(numeric.Uniform(rng, lo, hi))
}

// AllocOneHot creates size leaves that are all zero except the one at index.
// The leaves are temporary when temp is true.
func (a *Arena[T]) AllocOneHot(index, size int, temp bool) []Handle[T] {
	if index < 0 || index >= size {
		panic(fmt.Sprintf("autodiff: one-hot index %d out of range [0, %d)", index, size))
	}
	out := make([]Handle[T], size)
	for i := range out {
		var v T
		if i == index {
			v = 1
		}
		if temp {
			out[i] = a.AllocTemp(v)
		} else {
			out[i] = a.Alloc(v)
		}
	}
	return out
}

// allocDerived appends a node produced by kind from the given parents.
// Derived nodes always live in the temporary pool.
func (a *Arena[T]) allocDerived(data T, kind ops.Kind, x, y Handle[T]) Handle[T] {
	return a.allocTemp(Value[T]{
		data:    data,
		kind:    kind,
		parents: [2]Handle[T]{x, y},
	})
}

func (a *Arena[T]) allocTemp(v Value[T]) Handle[T] {
	a.temporary = append(a.temporary, v)
	return Handle[T]{id: -int64(len(a.temporary)), epoch: a.epoch, arena: a}
}

// Get resolves h to its node.
//
// The returned pointer is only valid until the next allocation on the arena.
// Get panics if h is the zero Handle, belongs to another arena, is out of
// range, or refers to a temporary pool that has since been cleared.
func (a *Arena[T]) Get(h Handle[T]) *Value[T] {
	return a.resolve(h)
}

func (a *Arena[T]) resolve(h Handle[T]) *Value[T] {
	switch {
	case h.arena == nil:
		panic("autodiff: zero Handle")
	case h.arena != a:
		panic("autodiff: handle belongs to a different arena")
	}
	if h.id >= 0 {
		if h.id >= int64(len(a.permanent)) {
			panic(fmt.Sprintf("autodiff: permanent handle %d out of range (%d nodes)", h.id, len(a.permanent)))
		}
		return &a.permanent[h.id]
	}
	if h.epoch != a.epoch {
		panic(fmt.Sprintf("autodiff: stale temporary handle %d (epoch %d, arena epoch %d)", h.id, h.epoch, a.epoch))
	}
	idx := -h.id - 1
	if idx >= int64(len(a.temporary)) {
		panic(fmt.Sprintf("autodiff: temporary handle %d out of range (%d nodes)", h.id, len(a.temporary)))
	}
	return &a.temporary[idx]
}

// ZeroGrads resets the gradient of every node in both pools to zero.
// Graph structure is left untouched.
func (a *Arena[T]) ZeroGrads() {
	for i := range a.permanent {
		a.permanent[i].grad = 0
	}
	for i := range a.temporary {
		a.temporary[i].grad = 0
	}
	a.phase = Idle
}

// ClearTemps discards every temporary node.
//
// Call it after each backward pass and before the next forward pass so memory
// stays bounded under repeated training. Handles to discarded nodes become
// stale and panic when resolved. Permanent leaves keep their data and gradient.
func (a *Arena[T]) ClearTemps() {
	clear(a.temporary)
	a.temporary = a.temporary[:0]
	a.epoch++
	a.phase = Idle
}

// Len returns the total number of live nodes.
func (a *Arena[T]) Len() int {
	return len(a.permanent) + len(a.temporary)
}

// NumPermanent returns the number of permanent leaves.
func (a *Arena[T]) NumPermanent() int {
	return len(a.permanent)
}

// NumTemporary returns the number of nodes in the temporary pool.
func (a *Arena[T]) NumTemporary() int {
	return len(a.temporary)
}

// Epoch returns the temporary pool generation. It increases on every ClearTemps.
func (a *Arena[T]) Epoch() uint32 {
	return a.epoch
}

// Phase returns the state of the most recent backward pass.
func (a *Arena[T]) Phase() Phase {
	return a.phase
}
