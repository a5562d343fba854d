package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidHeader    = errors.New("invalid parameter header")
	ErrTruncated        = errors.New("parameter payload truncated")
	ErrNonFinite        = errors.New("non-finite parameter value")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "dimension", "non_finite")
	Matrix  string // Matrix involved, if any
	Details string // Additional details
	Err     error  // Sentinel the error matches with errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Matrix != "" {
		return fmt.Sprintf("%s: matrix %q: %s", e.Type, e.Matrix, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
