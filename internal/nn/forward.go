package nn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// Cache holds the intermediates of one forward pass.
//
// Shapes for a batch of n samples:
//   - Z1, A1: [hidden, n]
//   - Z2, A2: [output, n]
type Cache struct {
	Z1 *mat.Dense // Hidden pre-activation
	A1 *mat.Dense // Hidden activation, ReLU(Z1)
	Z2 *mat.Dense // Output pre-activation (logits)
	A2 *mat.Dense // Output activation, Softmax(Z2)
}

// Forward runs X [input, n] through both layers.
//
//	Z1 = W1·X + b1    A1 = ReLU(Z1)
//	Z2 = W2·A1 + b2   A2 = Softmax(Z2)
//
// The biases are broadcast across the batch columns.
func Forward(p Params, x mat.Matrix) (Cache, error) {
	if err := p.check("forward"); err != nil {
		return Cache{}, err
	}
	input, _, _ := p.Sizes()
	if err := tensor.Check("forward", "X", x, input, tensor.Any); err != nil {
		return Cache{}, err
	}

	var z1 mat.Dense
	z1.Mul(p.W1, x)
	addBias(&z1, p.B1)
	a1 := ReLU(&z1)

	var z2 mat.Dense
	z2.Mul(p.W2, a1)
	addBias(&z2, p.B2)
	a2 := Softmax(&z2)

	return Cache{Z1: &z1, A1: a1, Z2: &z2, A2: a2}, nil
}

// addBias adds b[i] to every element of row i of z in place.
func addBias(z *mat.Dense, b *mat.Dense) {
	rows, _ := z.Dims()
	for i := 0; i < rows; i++ {
		floats.AddConst(b.At(i, 0), z.RawRowView(i))
	}
}
