package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalar/internal/numeric"
	"github.com/born-ml/scalar/internal/serialization"
)

// Errors returned when a weights file does not match the model.
var (
	ErrMissingParameter    = errors.New("nn: parameter missing from weights")
	ErrUnexpectedParameter = errors.New("nn: weights contain unknown parameter")
)

// StateDict returns the current value of every parameter of m, in
// Parameters order.
func StateDict[T numeric.Float, V Scalar[T, V]](m Module[T, V]) []serialization.Entry {
	params := m.Parameters()
	entries := make([]serialization.Entry, len(params))
	for i, p := range params {
		entries[i] = serialization.Entry{Name: p.Name(), Value: float64(p.Data())}
	}
	return entries
}

// LoadStateDict assigns entries to the parameters of m by name.
//
// Every parameter must have exactly one entry and every entry must name a
// parameter. Nothing is assigned when an error is returned.
func LoadStateDict[T numeric.Float, V Scalar[T, V]](m Module[T, V], entries []serialization.Entry) error {
	values := make(map[string]float64, len(entries))
	for _, e := range entries {
		values[e.Name] = e.Value
	}

	params := m.Parameters()
	for _, p := range params {
		if _, ok := values[p.Name()]; !ok {
			return fmt.Errorf("%q: %w", p.Name(), ErrMissingParameter)
		}
	}
	if len(values) != len(params) {
		known := make(map[string]struct{}, len(params))
		for _, p := range params {
			known[p.Name()] = struct{}{}
		}
		for name := range values {
			if _, ok := known[name]; !ok {
				return fmt.Errorf("%q: %w", name, ErrUnexpectedParameter)
			}
		}
	}

	for _, p := range params {
		p.SetData(T(values[p.Name()]))
	}
	return nil
}

// SaveModule writes the parameter values of m to path.
//
// Example:
//
//	if err := nn.SaveModule("xor.sclr", mlp, map[string]string{"lr": "0.15"}); err != nil {
//	    log.Fatal(err)
//	}
func SaveModule[T numeric.Float, V Scalar[T, V]](path string, m Module[T, V], metadata map[string]string) error {
	header := serialization.Header{
		ModelType: modelType(m),
		DType:     fmt.Sprintf("%T", T(0)),
		Metadata:  metadata,
	}
	if err := serialization.Save(path, header, StateDict(m)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LoadModule reads path and assigns its values to the parameters of m. The
// model must have been built with the same architecture.
func LoadModule[T numeric.Float, V Scalar[T, V]](path string, m Module[T, V]) (*serialization.Header, error) {
	f, err := serialization.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := LoadStateDict(m, f.Entries); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &f.Header, nil
}

func modelType(m any) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", m)
}
