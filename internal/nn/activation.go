package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/parallel"
)

var parallelism = parallel.DefaultConfig()

// ReLU applies max(0, z) element-wise.
func ReLU(z mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v)
	}, z)
	return &out
}

// ReLUDerivative returns 1 where z > 0 and 0 elsewhere, including z == 0.
func ReLUDerivative(z mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	}, z)
	return &out
}

// Softmax normalizes each column of z into a probability distribution.
//
// Each column is handled independently: exp(z_i - max) / Σ_j exp(z_j - max).
// Subtracting the column maximum leaves the result unchanged for finite
// inputs and keeps exp from overflowing on large logits.
func Softmax(z mat.Matrix) *mat.Dense {
	rows, cols := z.Dims()
	out := mat.NewDense(rows, cols, nil)

	parallel.For(cols, func(j int) {
		col := mat.Col(nil, j, z)
		shift := floats.Max(col)

		var sum float64
		for i, v := range col {
			e := math.Exp(v - shift)
			col[i] = e
			sum += e
		}
		floats.Scale(1/sum, col)
		out.SetCol(j, col)
	}, parallelism)

	return out
}
