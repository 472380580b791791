package train

import "errors"

// Sentinel errors returned by New and Dataset.Validate.
var (
	ErrEmptyDataset   = errors.New("train: empty dataset")
	ErrInvalidDataset = errors.New("train: invalid dataset")
	ErrInvalidConfig  = errors.New("train: invalid config")
)
