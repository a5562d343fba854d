// Package nn implements the two-layer digit classifier: ReLU hidden layer,
// softmax output layer, analytic gradients for softmax cross-entropy, and the
// inference helpers built on top of the forward pass.
//
// Every operation is a pure function over gonum matrices. Inputs are never
// modified; results are freshly allocated.
package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// Params holds the weights and biases of the network.
//
// Shapes:
//   - W1: [hidden, input]
//   - B1: [hidden, 1]
//   - W2: [output, hidden]
//   - B2: [output, 1]
type Params struct {
	W1 *mat.Dense
	B1 *mat.Dense
	W2 *mat.Dense
	B2 *mat.Dense
}

// Sizes returns the input, hidden and output layer sizes implied by W1 and W2.
// It returns zeros for missing weights.
func (p Params) Sizes() (input, hidden, output int) {
	if p.W1 != nil {
		hidden, input = p.W1.Dims()
	}
	if p.W2 != nil {
		output, _ = p.W2.Dims()
	}
	return input, hidden, output
}

// Validate checks that the four arrays are present and mutually consistent.
func (p Params) Validate() error {
	return p.check("params")
}

// Clone returns a deep copy of the parameters.
func (p Params) Clone() Params {
	return Params{
		W1: tensor.Clone(p.W1),
		B1: tensor.Clone(p.B1),
		W2: tensor.Clone(p.W2),
		B2: tensor.Clone(p.B2),
	}
}

// NumParameters returns the number of scalar parameters.
func (p Params) NumParameters() int {
	n := 0
	for _, m := range p.named() {
		n += tensor.ShapeOf(m.value).NumElements()
	}
	return n
}

func (p Params) check(op string) error {
	if err := tensor.Check(op, "W1", p.W1, tensor.Any, tensor.Any); err != nil {
		return err
	}
	_, hidden, _ := p.Sizes()
	if err := tensor.Check(op, "B1", p.B1, hidden, 1); err != nil {
		return err
	}
	if err := tensor.Check(op, "W2", p.W2, tensor.Any, hidden); err != nil {
		return err
	}
	_, _, output := p.Sizes()
	return tensor.Check(op, "B2", p.B2, output, 1)
}

type namedMatrix struct {
	name  string
	value *mat.Dense
}

// named lists the parameters in the canonical W1, B1, W2, B2 order.
func (p Params) named() []namedMatrix {
	return []namedMatrix{
		{"W1", p.W1},
		{"B1", p.B1},
		{"W2", p.W2},
		{"B2", p.B2},
	}
}

// String summarizes the layer sizes.
func (p Params) String() string {
	in, hidden, out := p.Sizes()
	return fmt.Sprintf("Params{%d→%d→%d}", in, hidden, out)
}
