package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestReLU(t *testing.T) {
	z := mat.NewDense(2, 3, []float64{
		-2, 0, 3,
		1.5, -0.1, 0,
	})

	out := ReLU(z)

	expected := mat.NewDense(2, 3, []float64{
		0, 0, 3,
		1.5, 0, 0,
	})
	assert.True(t, mat.Equal(expected, out), "got %v", mat.Formatted(out))
	assert.Equal(t, -2.0, z.At(0, 0), "input must not be modified")
}

func TestReLU_Properties(t *testing.T) {
	rng := NewRand(7)
	data := make([]float64, 20*30)
	for i := range data {
		data[i] = rng.NormFloat64() * 3
	}
	z := mat.NewDense(20, 30, data)

	out := ReLU(z)
	rows, cols := out.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			got := out.At(i, j)
			assert.GreaterOrEqual(t, got, 0.0)
			if v := z.At(i, j); v >= 0 {
				assert.Equal(t, v, got)
			}
		}
	}
}

func TestReLUDerivative(t *testing.T) {
	z := mat.NewDense(1, 4, []float64{-1, 0, 1e-9, 2})

	out := ReLUDerivative(z)

	assert.Equal(t, []float64{0, 0, 1, 1}, mat.Row(nil, 0, out))
}

func TestSoftmax_KnownValues(t *testing.T) {
	z := mat.NewDense(3, 1, []float64{1, 2, 3})

	out := Softmax(z)

	expected := []float64{0.09003057, 0.24472847, 0.66524096}
	assert.True(t, floats.EqualApprox(expected, mat.Col(nil, 0, out), 1e-7))
}

func TestSoftmax_ColumnsSumToOne(t *testing.T) {
	rng := NewRand(3)
	data := make([]float64, 10*200)
	for i := range data {
		data[i] = rng.Float64()*10 - 5
	}
	z := mat.NewDense(10, 200, data)

	out := Softmax(z)
	_, cols := out.Dims()
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, out)
		assert.InDelta(t, 1.0, floats.Sum(col), 1e-12, "column %d", j)
		for _, v := range col {
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestSoftmax_ColumnsAreIndependent(t *testing.T) {
	z := mat.NewDense(2, 2, []float64{
		1, 100,
		2, -100,
	})

	out := Softmax(z)
	first := Softmax(mat.NewDense(2, 1, []float64{1, 2}))
	second := Softmax(mat.NewDense(2, 1, []float64{100, -100}))

	assert.True(t, floats.EqualApprox(mat.Col(nil, 0, first), mat.Col(nil, 0, out), 1e-15))
	assert.True(t, floats.EqualApprox(mat.Col(nil, 0, second), mat.Col(nil, 1, out), 1e-15))
}

func TestSoftmax_LargeInputsStayFinite(t *testing.T) {
	z := mat.NewDense(2, 1, []float64{1000, 1001})

	out := Softmax(z)
	small := Softmax(mat.NewDense(2, 1, []float64{0, 1}))

	for _, v := range mat.Col(nil, 0, out) {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	assert.True(t, mat.EqualApprox(small, out, 1e-12))
}
