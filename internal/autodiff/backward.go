package autodiff

import (
	"github.com/born-ml/scalar/internal/autodiff/ops"
	"github.com/born-ml/scalar/internal/numeric"
)

// Phase is the state of an arena's backward pass.
type Phase uint8

// Backward pass phases.
const (
	Idle        Phase = iota // no pass since the last reset
	Seeded                   // root gradient set to one
	Propagating              // rules are being applied
	Done                     // pass completed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Seeded:
		return "seeded"
	case Propagating:
		return "propagating"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Backward propagates gradients from root to every node it depends on.
//
// Algorithm:
//  1. Mark the nodes reachable from the root and clear the gradient of every
//     reachable derived node, so a repeated pass starts from fresh
//     intermediate values.
//  2. Set the root gradient to one, overwriting any previous value.
//  3. Walk the temporary pool from the root down to the first node. Creation
//     order is a topological order, so every node runs after all of its
//     dependents have contributed to it.
//  4. For each reachable derived node, apply its operator's backward rule and
//     add the contributions to its parents' gradients.
//
// Leaf gradients accumulate: running Backward twice without ZeroGrads adds
// exactly one more pass's contribution to every leaf in the root's ancestry.
// Data and structure are never modified.
func (a *Arena[T]) Backward(root Handle[T]) {
	r := a.resolve(root)

	// Permanent nodes are leaves; there is nothing to propagate.
	if !root.IsTemporary() {
		r.grad = 1
		a.phase = Done
		return
	}

	start := int(-root.id - 1)
	reach := a.marks(start + 1)
	reach[start] = true
	for i := start; i >= 0; i-- {
		v := &a.temporary[i]
		if !reach[i] || v.kind.IsLeaf() {
			continue
		}
		v.grad = 0
		markParent(reach, v.parents[0])
		if v.kind.Arity() == 2 {
			markParent(reach, v.parents[1])
		}
	}

	r.grad = 1
	a.phase = Seeded
	a.phase = Propagating
	for i := start; i >= 0; i-- {
		v := &a.temporary[i]
		if !reach[i] || v.kind.IsLeaf() {
			continue
		}
		a.propagate(v)
	}
	a.phase = Done
}

// propagate applies v's backward rule to its parents' gradients.
func (a *Arena[T]) propagate(v *Value[T]) {
	p0 := a.resolve(v.parents[0])
	var x, y T = p0.data, 0
	var p1 *Value[T]
	if v.kind.Arity() == 2 {
		p1 = a.resolve(v.parents[1])
		y = p1.data
	}

	dx, dy := ops.Backward(v.kind, v.grad, v.data, x, y)

	p0.AddGrad(dx)
	if p1 != nil {
		p1.AddGrad(dy)
	}
}

func markParent[T numeric.Float](reach []bool, h Handle[T]) {
	if h.id < 0 {
		reach[-h.id-1] = true
	}
}

// marks returns a cleared scratch slice of length n.
func (a *Arena[T]) marks(n int) []bool {
	if cap(a.reach) < n {
		a.reach = make([]bool, n)
	}
	a.reach = a.reach[:n]
	clear(a.reach)
	return a.reach
}
