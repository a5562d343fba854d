package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// Gradients holds ∂L/∂θ for every parameter, with the same shapes as Params.
type Gradients struct {
	DW1 *mat.Dense
	DB1 *mat.Dense
	DW2 *mat.Dense
	DB2 *mat.Dense
}

// OneHotEncode returns a [classes, len(labels)] matrix whose column i is the
// standard basis vector for labels[i].
func OneHotEncode(labels []int, classes int) (*mat.Dense, error) {
	return oneHot("one-hot", labels, classes)
}

// oneHot validates labels against classes, reporting failures under op.
func oneHot(op string, labels []int, classes int) (*mat.Dense, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("%s: class count must be positive, got %d", op, classes)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%s: %w", op, tensor.ErrEmptyBatch)
	}
	if err := tensor.CheckLabels(op, labels, classes); err != nil {
		return nil, err
	}

	out := mat.NewDense(classes, len(labels), nil)
	for j, y := range labels {
		out.Set(y, j, 1)
	}
	return out, nil
}

// Backward computes the gradients of the mean softmax cross-entropy loss for
// the batch X [input, m] with labels Y (length m), given the forward cache.
//
//	dZ2 = A2 − onehot(Y)
//	dW2 = dZ2·A1ᵀ / m          db2 = Σ_cols dZ2 / m
//	dZ1 = (W2ᵀ·dZ2) ⊙ ReLU'(Z1)
//	dW1 = dZ1·Xᵀ / m           db1 = Σ_cols dZ1 / m
func Backward(c Cache, p Params, x mat.Matrix, y []int) (Gradients, error) {
	const op = "backward"

	if err := p.check(op); err != nil {
		return Gradients{}, err
	}
	m := len(y)
	if m == 0 {
		return Gradients{}, fmt.Errorf("%s: %w", op, tensor.ErrEmptyBatch)
	}

	input, hidden, output := p.Sizes()
	checks := []struct {
		name       string
		value      mat.Matrix
		rows, cols int
	}{
		{"X", x, input, m},
		{"Z1", c.Z1, hidden, m},
		{"A1", c.A1, hidden, m},
		{"Z2", c.Z2, output, m},
		{"A2", c.A2, output, m},
	}
	for _, chk := range checks {
		if err := tensor.Check(op, chk.name, chk.value, chk.rows, chk.cols); err != nil {
			return Gradients{}, err
		}
	}
	y1h, err := oneHot(op, y, output)
	if err != nil {
		return Gradients{}, err
	}

	scale := 1 / float64(m)

	var dZ2 mat.Dense
	dZ2.Sub(c.A2, y1h)

	var dW2 mat.Dense
	dW2.Mul(&dZ2, c.A1.T())
	dW2.Scale(scale, &dW2)

	var dZ1 mat.Dense
	dZ1.Mul(p.W2.T(), &dZ2)
	dZ1.MulElem(&dZ1, ReLUDerivative(c.Z1))

	var dW1 mat.Dense
	dW1.Mul(&dZ1, x.T())
	dW1.Scale(scale, &dW1)

	return Gradients{
		DW1: &dW1,
		DB1: rowSums(&dZ1, scale),
		DW2: &dW2,
		DB2: rowSums(&dZ2, scale),
	}, nil
}

// rowSums returns a [rows, 1] column holding scale·Σ_j d[i, j].
func rowSums(d *mat.Dense, scale float64) *mat.Dense {
	rows, _ := d.Dims()
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, scale*floats.Sum(d.RawRowView(i)))
	}
	return out
}
