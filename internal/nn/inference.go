package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// RunImage feeds a single flattened image through the network and returns the
// softmax scores, one per class.
func RunImage(p Params, image []float64) ([]float64, error) {
	if len(image) == 0 {
		return nil, &tensor.ShapeError{
			Op:      "run-image",
			Operand: "image",
			Got:     tensor.Shape{0, 1},
			Want:    tensor.Shape{tensor.Any, 1},
		}
	}

	c, err := Forward(p, mat.NewVecDense(len(image), image))
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, 0, c.A2), nil
}

// Predict returns the most likely class for a single flattened image.
func Predict(p Params, image []float64) (int, error) {
	scores, err := RunImage(p, image)
	if err != nil {
		return -1, err
	}
	return ArgMax(scores), nil
}
