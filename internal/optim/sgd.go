package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/nn"
	"github.com/born-ml/digitnet/internal/tensor"
)

// SGD implements full-batch gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	lr float64
}

var _ Optimizer = (*SGD)(nil)

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.15)
}

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.15

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD{lr: config.LR}
}

// Step applies one gradient-descent update to all four parameters.
func (s *SGD) Step(p nn.Params, g nn.Gradients) (nn.Params, error) {
	return Update(p, g, s.lr)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Update returns p - alpha*g for every parameter/gradient pair.
//
// Shapes of each gradient must equal the shape of its parameter.
func Update(p nn.Params, g nn.Gradients, alpha float64) (nn.Params, error) {
	const op = "update"

	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nn.Params{}, fmt.Errorf("%s: learning rate must be finite, got %v", op, alpha)
	}
	if err := p.Validate(); err != nil {
		return nn.Params{}, fmt.Errorf("%s: %w", op, err)
	}

	pairs := []struct {
		name  string
		param *mat.Dense
		grad  *mat.Dense
	}{
		{"dW1", p.W1, g.DW1},
		{"dB1", p.B1, g.DB1},
		{"dW2", p.W2, g.DW2},
		{"dB2", p.B2, g.DB2},
	}

	updated := make([]*mat.Dense, len(pairs))
	for i, pair := range pairs {
		rows, cols := pair.param.Dims()
		if err := tensor.Check(op, pair.name, pair.grad, rows, cols); err != nil {
			return nn.Params{}, err
		}
		updated[i] = step(pair.param, pair.grad, alpha)
	}

	return nn.Params{W1: updated[0], B1: updated[1], W2: updated[2], B2: updated[3]}, nil
}

// step computes param - alpha*grad into a fresh matrix.
func step(param, grad *mat.Dense, alpha float64) *mat.Dense {
	var scaled mat.Dense
	scaled.Scale(alpha, grad)

	var out mat.Dense
	out.Sub(param, &scaled)
	return &out
}
