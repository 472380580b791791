// Package train drives repeated forward, backward and update cycles over a
// small in-memory dataset.
package train

import (
	"fmt"

	"github.com/born-ml/scalar/internal/numeric"
)

// Sample is one input vector with its expected output vector.
type Sample[T numeric.Float] struct {
	Input  []T
	Target []T
}

// Dataset is an ordered list of samples.
type Dataset[T numeric.Float] []Sample[T]

// XOR returns the four exclusive-or pairs.
func XOR[T numeric.Float]() Dataset[T] {
	return Dataset[T]{
		{Input: []T{0, 0}, Target: []T{0}},
		{Input: []T{0, 1}, Target: []T{1}},
		{Input: []T{1, 0}, Target: []T{1}},
		{Input: []T{1, 1}, Target: []T{0}},
	}
}

// Validate checks that the dataset is non-empty and every sample has the same
// input and target widths.
func (d Dataset[T]) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDataset
	}
	in, out := len(d[0].Input), len(d[0].Target)
	if in == 0 || out == 0 {
		return fmt.Errorf("sample 0 has %d inputs and %d targets: %w", in, out, ErrInvalidDataset)
	}
	for i, s := range d {
		if len(s.Input) != in || len(s.Target) != out {
			return fmt.Errorf("sample %d has shape %d->%d, want %d->%d: %w",
				i, len(s.Input), len(s.Target), in, out, ErrInvalidDataset)
		}
	}
	return nil
}

// InputWidth returns the number of inputs per sample.
func (d Dataset[T]) InputWidth() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Input)
}

// TargetWidth returns the number of targets per sample.
func (d Dataset[T]) TargetWidth() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Target)
}
