package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

func TestArgMax(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
		want  int
	}{
		{"single", []float64{0.3}, 0},
		{"clear max", []float64{0.1, 0.7, 0.2}, 1},
		{"tie picks lowest", []float64{0.2, 0.4, 0.4}, 1},
		{"all equal", []float64{0.25, 0.25, 0.25, 0.25}, 0},
		{"empty", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArgMax(tt.input))
		})
	}
}

func TestPredictions(t *testing.T) {
	probs := mat.NewDense(3, 4, []float64{
		0.7, 0.1, 0.2, 0.5,
		0.2, 0.1, 0.3, 0.5,
		0.1, 0.8, 0.5, 0.0,
	})

	assert.Equal(t, []int{0, 2, 2, 0}, Predictions(probs))
}

func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]int{0, 1, 2}, []int{0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, acc, 1e-12)

	acc, err = Accuracy([]int{4, 4}, []int{4, 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}

func TestAccuracy_Errors(t *testing.T) {
	_, err := Accuracy([]int{0, 1}, []int{0})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Accuracy(nil, nil)
	assert.ErrorIs(t, err, tensor.ErrEmptyBatch)
}

func TestEvaluate(t *testing.T) {
	p := newTestParams(t, 4, 3, 2, 9)
	x := newTestBatch(4, 6, 10)

	c, err := Forward(p, x)
	require.NoError(t, err)
	labels := Predictions(c.A2)

	acc, err := Evaluate(p, x, labels)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)
}
