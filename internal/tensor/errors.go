package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrLabelOutOfRange = errors.New("label out of range")
	ErrEmptyBatch      = errors.New("empty batch")
)

// ShapeError identifies the operation and operand whose dimensions are incompatible.
type ShapeError struct {
	Op      string // Operation that rejected the operand (e.g. "forward")
	Operand string // Operand name (e.g. "W1", "X")
	Got     Shape  // Actual shape
	Want    Shape  // Expected shape, Any for unconstrained dimensions
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s has shape %s, want %s", e.Op, e.Operand, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// LabelError reports a label that cannot index the class dimension.
type LabelError struct {
	Op      string
	Index   int // Position in the label vector
	Label   int
	Classes int
}

// Error implements the error interface.
func (e *LabelError) Error() string {
	return fmt.Sprintf("%s: label %d at index %d outside [0, %d)", e.Op, e.Label, e.Index, e.Classes)
}

// Unwrap lets errors.Is match ErrLabelOutOfRange.
func (e *LabelError) Unwrap() error {
	return ErrLabelOutOfRange
}
