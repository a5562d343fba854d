package dataset

import "errors"

// Common errors.
var (
	ErrInvalidMagic    = errors.New("invalid magic number")
	ErrInvalidHeader   = errors.New("invalid IDX header")
	ErrCountMismatch   = errors.New("image and label counts differ")
	ErrEmptyDataset    = errors.New("empty dataset")
	ErrFeatureMismatch = errors.New("feature count mismatch")
)
