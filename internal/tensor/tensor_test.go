package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestShapeOf(t *testing.T) {
	m := mat.NewDense(3, 4, nil)
	assert.Equal(t, Shape{3, 4}, ShapeOf(m))
	assert.Equal(t, 12, ShapeOf(m).NumElements())

	var nilDense *mat.Dense
	assert.Nil(t, ShapeOf(nilDense))
	assert.Nil(t, ShapeOf(nil))
}

func TestShape_Matches(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		pattern Shape
		want    bool
	}{
		{"exact", Shape{10, 784}, Shape{10, 784}, true},
		{"any cols", Shape{10, 5}, Shape{10, Any}, true},
		{"any rows", Shape{7, 1}, Shape{Any, 1}, true},
		{"wrong rows", Shape{9, 1}, Shape{10, 1}, false},
		{"rank", Shape{10}, Shape{10, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Matches(tt.pattern))
		})
	}
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "(10×784)", Shape{10, 784}.String())
	assert.Equal(t, "(10×?)", Shape{10, Any}.String())
	assert.Equal(t, "(nil)", Shape(nil).String())
}

func TestCheck(t *testing.T) {
	m := mat.NewDense(10, 1, nil)
	require.NoError(t, Check("forward", "b1", m, 10, 1))

	err := Check("forward", "b1", m, 12, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), "forward")
	assert.Contains(t, err.Error(), "b1")
	assert.Contains(t, err.Error(), "(10×1)")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, Shape{12, 1}, shapeErr.Want)

	var nilDense *mat.Dense
	assert.ErrorIs(t, Check("forward", "X", nilDense, Any, Any), ErrShapeMismatch)
}

func TestCheckLabels(t *testing.T) {
	require.NoError(t, CheckLabels("backward", []int{0, 1, 2}, 3))

	err := CheckLabels("backward", []int{0, 3, 1}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLabelOutOfRange)

	var labelErr *LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, 1, labelErr.Index)
	assert.Equal(t, 3, labelErr.Label)

	assert.ErrorIs(t, CheckLabels("backward", []int{-1}, 3), ErrLabelOutOfRange)
}

func TestCloneAndColumn(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	c := Clone(m)
	c.Set(0, 0, 100)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, []float64{2, 4}, Column(m, 1))
	assert.Nil(t, Clone(nil))
}
