package train

import (
	"fmt"

	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/numeric"
	"github.com/born-ml/scalar/internal/optim"
)

// Config holds the training hyperparameters.
type Config[T numeric.Float] struct {
	LR         T   // Gradient-descent learning rate (default: 0.01)
	Iterations int // Number of full-dataset iterations (default: 1)

	// OnIteration, if set, is called after every iteration with the
	// zero-based iteration index and the loss before the update.
	OnIteration func(iter int, loss T)
}

// Trainer runs full-batch gradient descent on a model.
//
// Every iteration builds the summed squared error over the whole dataset,
// runs one backward pass from it, applies one SGD step to every parameter and
// clears the store's temporary nodes.
type Trainer[T numeric.Float, V nn.Scalar[T, V]] struct {
	store     nn.Store[T, V]
	model     nn.Module[T, V]
	optimizer *optim.SGD[T, V]
	inputs    [][]V
	targets   [][]V
	config    Config[T]
}

// New creates a trainer. Inputs and targets are allocated once as permanent
// leaves of store.
func New[T numeric.Float, V nn.Scalar[T, V]](
	store nn.Store[T, V],
	model nn.Module[T, V],
	data Dataset[T],
	config Config[T],
) (*Trainer[T, V], error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if config.Iterations < 0 {
		return nil, fmt.Errorf("iterations %d: %w", config.Iterations, ErrInvalidConfig)
	}
	if config.LR < 0 {
		return nil, fmt.Errorf("learning rate %v: %w", config.LR, ErrInvalidConfig)
	}
	if config.Iterations == 0 {
		config.Iterations = 1
	}

	t := &Trainer[T, V]{
		store:     store,
		model:     model,
		optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig[T]{LR: config.LR}),
		inputs:    make([][]V, len(data)),
		targets:   make([][]V, len(data)),
	}
	t.config = config
	t.config.LR = t.optimizer.GetLR()

	for i, s := range data {
		t.inputs[i] = allocAll(store, s.Input)
		t.targets[i] = allocAll(store, s.Target)
	}
	return t, nil
}

func allocAll[T numeric.Float, V any](store nn.Store[T, V], values []T) []V {
	out := make([]V, len(values))
	for i, v := range values {
		out[i] = store.Alloc(v)
	}
	return out
}

// Step runs one training iteration and returns the loss before the update.
func (t *Trainer[T, V]) Step() T {
	loss := t.store.AllocTemp(0)
	for i, input := range t.inputs {
		loss = nn.SquaredError[T](loss, t.model.Forward(input), t.targets[i])
	}

	// Input and target leaves are never stepped; clear them with everything
	// else so each iteration reports only its own gradients.
	t.store.ZeroGrads()
	t.store.Backward(loss)
	value := loss.Data()
	t.optimizer.Step()
	t.store.ClearTemps()
	return value
}

// Run performs the configured number of iterations and returns the final loss.
func (t *Trainer[T, V]) Run() T {
	var loss T
	for i := 0; i < t.config.Iterations; i++ {
		loss = t.Step()
		if t.config.OnIteration != nil {
			t.config.OnIteration(i, loss)
		}
	}
	return loss
}

// Predict evaluates the model on every sample and returns the raw outputs.
func (t *Trainer[T, V]) Predict() [][]T {
	out := make([][]T, len(t.inputs))
	for i, input := range t.inputs {
		outputs := t.model.Forward(input)
		out[i] = make([]T, len(outputs))
		for j, o := range outputs {
			out[i][j] = o.Data()
		}
	}
	t.store.ClearTemps()
	return out
}

// MaxError returns the largest absolute difference between a prediction and
// its target across the dataset.
func (t *Trainer[T, V]) MaxError() T {
	var worst T
	for i, outputs := range t.Predict() {
		for j, o := range outputs {
			diff := o - t.targets[i][j].Data()
			if diff < 0 {
				diff = -diff
			}
			worst = numeric.Max(worst, diff)
		}
	}
	return worst
}

// Inputs returns the input leaves, one slice per sample.
func (t *Trainer[T, V]) Inputs() [][]V {
	return t.inputs
}

// Targets returns the target leaves, one slice per sample.
func (t *Trainer[T, V]) Targets() [][]V {
	return t.targets
}

// Config returns the effective configuration.
func (t *Trainer[T, V]) Config() Config[T] {
	return t.config
}
