// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// Shape is the dimension list of a matrix, rows first.
type Shape = tensor.Shape

// Any matches every size in a Shape pattern.
const Any = tensor.Any

// ShapeError reports an operand whose shape does not fit an operation.
type ShapeError = tensor.ShapeError

// LabelError reports a class label outside [0, classes).
type LabelError = tensor.LabelError

// Sentinel errors.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrLabelOutOfRange = tensor.ErrLabelOutOfRange
	ErrEmptyBatch      = tensor.ErrEmptyBatch
)

// ShapeOf returns the shape of m, or nil for a nil matrix.
func ShapeOf(m mat.Matrix) Shape {
	return tensor.ShapeOf(m)
}
