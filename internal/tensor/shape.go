// Package tensor defines the shape vocabulary and typed errors shared by the
// digitnet packages. Matrices themselves are gonum *mat.Dense values laid out
// as (features × samples): one sample per column.
package tensor

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Any marks a dimension that a shape check does not constrain.
const Any = -1

// Shape represents the dimensions of a matrix: {rows, cols}.
type Shape []int

// ShapeOf returns the shape of m. A nil matrix has a nil shape.
func ShapeOf(m mat.Matrix) Shape {
	if isNil(m) {
		return nil
	}
	r, c := m.Dims()
	return Shape{r, c}
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Matches reports whether s satisfies pattern, where Any matches every size.
func (s Shape) Matches(pattern Shape) bool {
	if len(s) != len(pattern) {
		return false
	}
	for i := range s {
		if pattern[i] != Any && s[i] != pattern[i] {
			return false
		}
	}
	return true
}

// String renders the shape as (rows×cols), with ? for Any.
func (s Shape) String() string {
	if s == nil {
		return "(nil)"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		if dim == Any {
			parts[i] = "?"
			continue
		}
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, "×") + ")"
}
