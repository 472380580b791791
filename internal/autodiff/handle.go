package autodiff

import (
	"fmt"

	"github.com/born-ml/scalar/internal/numeric"
)

// Handle is a lightweight reference to a node owned by an Arena.
//
// Non-negative ids index the permanent pool. Negative ids index the temporary
// pool as -(index+1) and are only valid within the epoch they were created in.
// The zero Handle refers to nothing.
type Handle[T numeric.Float] struct {
	id    int64
	epoch uint32
	arena *Arena[T]
}

// Arena returns the owning arena, nil for the zero Handle.
func (h Handle[T]) Arena() *Arena[T] {
	return h.arena
}

// IsZero reports whether h is the zero Handle.
func (h Handle[T]) IsZero() bool {
	return h.arena == nil
}

// IsTemporary reports whether h refers to the temporary pool.
func (h Handle[T]) IsTemporary() bool {
	return h.id < 0
}

// Value resolves the handle. See Arena.Get.
func (h Handle[T]) Value() *Value[T] {
	return h.owner().resolve(h)
}

// Data returns the forward value of the node.
func (h Handle[T]) Data() T {
	return h.Value().data
}

// Grad returns the accumulated gradient of the node.
func (h Handle[T]) Grad() T {
	return h.Value().grad
}

// AddGrad accumulates delta into the node gradient.
func (h Handle[T]) AddGrad(delta T) {
	h.Value().AddGrad(delta)
}

// ZeroGrad resets the node gradient to zero.
func (h Handle[T]) ZeroGrad() {
	h.Value().ZeroGrad()
}

// Step applies one gradient-descent update to the node. See Value.Step.
func (h Handle[T]) Step(lr T) {
	h.Value().Step(lr)
}

// SetData overwrites the forward value of the node.
func (h Handle[T]) SetData(data T) {
	h.Value().SetData(data)
}

// Backward runs a backward pass rooted at h. See Arena.Backward.
func (h Handle[T]) Backward() {
	h.owner().Backward(h)
}

// String implements fmt.Stringer.
func (h Handle[T]) String() string {
	if h.arena == nil {
		return "Handle(nil)"
	}
	if h.id < 0 {
		return fmt.Sprintf("Handle(temp %d@%d)", -h.id-1, h.epoch)
	}
	return fmt.Sprintf("Handle(%d)", h.id)
}

func (h Handle[T]) owner() *Arena[T] {
	if h.arena == nil {
		panic("autodiff: zero Handle")
	}
	return h.arena
}
