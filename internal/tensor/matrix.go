package tensor

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// Check returns a *ShapeError when m is nil or its shape does not match {rows, cols}.
// Pass Any for a dimension that is not constrained.
func Check(op, operand string, m mat.Matrix, rows, cols int) error {
	want := Shape{rows, cols}
	got := ShapeOf(m)
	if got == nil || !got.Matches(want) {
		return &ShapeError{Op: op, Operand: operand, Got: got, Want: want}
	}
	return nil
}

// CheckLabels verifies every label lies in [0, classes).
func CheckLabels(op string, labels []int, classes int) error {
	for i, y := range labels {
		if y < 0 || y >= classes {
			return &LabelError{Op: op, Index: i, Label: y, Classes: classes}
		}
	}
	return nil
}

// Clone returns a deep copy of m, or nil for a nil matrix.
func Clone(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	return mat.DenseCopyOf(m)
}

// Column copies column j of m into a new slice.
func Column(m mat.Matrix, j int) []float64 {
	return mat.Col(nil, j, m)
}

// isNil catches both untyped nil and typed nil pointers stored in the interface.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
