package serialization

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Validation limits for resource protection.
const (
	MaxDimension = 1 << 16 // largest accepted row or column count
	MaxValues    = 1 << 26 // largest accepted payload, in float32 values
)

// ValidateHeader checks that every dimension is positive and bounded and that
// the matrices fit together as a two-layer network.
func ValidateHeader(h Header) error {
	dims := []struct {
		name  string
		value int32
	}{
		{"W1.rows", h.W1Rows},
		{"W1.cols", h.W1Cols},
		{"W2.rows", h.W2Rows},
		{"W2.cols", h.W2Cols},
		{"b1.rows", h.B1Rows},
		{"b2.rows", h.B2Rows},
	}
	for _, d := range dims {
		if d.value <= 0 || d.value > MaxDimension {
			return &ValidationError{
				Type:    "dimension",
				Details: fmt.Sprintf("%s = %d, want 1..%d", d.name, d.value, MaxDimension),
				Err:     ErrInvalidHeader,
			}
		}
	}

	if h.W2Cols != h.W1Rows || h.B1Rows != h.W1Rows {
		return &ValidationError{
			Type:    "inconsistent",
			Details: fmt.Sprintf("hidden size: W1.rows=%d W2.cols=%d b1.rows=%d", h.W1Rows, h.W2Cols, h.B1Rows),
			Err:     ErrInvalidHeader,
		}
	}
	if h.B2Rows != h.W2Rows {
		return &ValidationError{
			Type:    "inconsistent",
			Details: fmt.Sprintf("output size: W2.rows=%d b2.rows=%d", h.W2Rows, h.B2Rows),
			Err:     ErrInvalidHeader,
		}
	}

	if n := h.PayloadValues(); n > MaxValues {
		return &ValidationError{
			Type:    "too_large",
			Details: fmt.Sprintf("%d values, max %d", n, MaxValues),
			Err:     ErrInvalidHeader,
		}
	}

	return nil
}

// validateValues rejects NaN and infinite entries of a float32 payload.
func validateValues(name string, values []float32) error {
	for i, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return &ValidationError{
				Type:    "non_finite",
				Matrix:  name,
				Details: fmt.Sprintf("value %d is %v", i, v),
				Err:     ErrNonFinite,
			}
		}
	}
	return nil
}
