package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// minProb keeps log finite when a probability underflows to zero.
const minProb = 1e-15

// CrossEntropy returns the mean negative log-likelihood of labels under the
// column distributions in probs [classes, n]:
//
//	Loss = -(1/n) Σ_j log(probs[labels[j], j])
func CrossEntropy(probs mat.Matrix, labels []int) (float64, error) {
	const op = "cross-entropy"

	if len(labels) == 0 {
		return 0, fmt.Errorf("%s: %w", op, tensor.ErrEmptyBatch)
	}
	if err := tensor.Check(op, "probs", probs, tensor.Any, len(labels)); err != nil {
		return 0, err
	}
	classes, _ := probs.Dims()
	if err := tensor.CheckLabels(op, labels, classes); err != nil {
		return 0, err
	}

	var total float64
	for j, y := range labels {
		total -= math.Log(math.Max(probs.At(y, j), minProb))
	}
	return total / float64(len(labels)), nil
}

// Loss runs a forward pass and returns the cross-entropy of the batch.
func Loss(p Params, x mat.Matrix, labels []int) (float64, error) {
	c, err := Forward(p, x)
	if err != nil {
		return 0, err
	}
	return CrossEntropy(c.A2, labels)
}
