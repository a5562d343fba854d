package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/parallel"
	"github.com/born-ml/digitnet/internal/tensor"
)

// ArgMax returns the index of the largest value, preferring the lowest index on ties.
// It returns -1 for an empty slice.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}

// Predictions returns the arg-max class of every column of probs.
func Predictions(probs mat.Matrix) []int {
	_, cols := probs.Dims()
	out := make([]int, cols)
	parallel.For(cols, func(j int) {
		out[j] = ArgMax(mat.Col(nil, j, probs))
	}, parallelism)
	return out
}

// Accuracy returns the fraction of predictions equal to their label.
func Accuracy(predictions, labels []int) (float64, error) {
	if len(predictions) != len(labels) {
		return 0, fmt.Errorf("accuracy: %d predictions for %d labels: %w",
			len(predictions), len(labels), tensor.ErrShapeMismatch)
	}
	if len(labels) == 0 {
		return 0, fmt.Errorf("accuracy: %w", tensor.ErrEmptyBatch)
	}

	correct := 0
	for i, p := range predictions {
		if p == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}

// Evaluate runs the whole batch through the network and returns its accuracy.
func Evaluate(p Params, x mat.Matrix, labels []int) (float64, error) {
	c, err := Forward(p, x)
	if err != nil {
		return 0, err
	}
	return Accuracy(Predictions(c.A2), labels)
}
