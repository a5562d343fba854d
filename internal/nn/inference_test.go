package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

func TestRunImage(t *testing.T) {
	p := newTestParams(t, 784, 10, 10, 4)
	image := mat.Col(nil, 0, newTestBatch(784, 1, 5))

	scores, err := RunImage(p, image)
	require.NoError(t, err)

	require.Len(t, scores, 10)
	assert.InDelta(t, 1.0, floats.Sum(scores), 1e-12)

	batch, err := Forward(p, mat.NewDense(784, 1, image))
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(mat.Col(nil, 0, batch.A2), scores, 1e-15))
}

func TestPredict(t *testing.T) {
	// Output unit 1 is driven by the single hidden unit; unit 0 only by its bias.
	p := Params{
		W1: mat.NewDense(1, 2, []float64{1, 1}),
		B1: mat.NewDense(1, 1, []float64{0}),
		W2: mat.NewDense(2, 1, []float64{0, 4}),
		B2: mat.NewDense(2, 1, []float64{1, 0}),
	}

	class, err := Predict(p, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, class)

	class, err = Predict(p, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, class)
}

func TestPredict_MatchesRunImage(t *testing.T) {
	p := newTestParams(t, 16, 8, 5, 6)
	image := mat.Col(nil, 0, newTestBatch(16, 1, 7))

	scores, err := RunImage(p, image)
	require.NoError(t, err)
	class, err := Predict(p, image)
	require.NoError(t, err)

	assert.Equal(t, ArgMax(scores), class)
}

func TestRunImage_Errors(t *testing.T) {
	p := newTestParams(t, 4, 3, 2, 1)

	_, err := RunImage(p, nil)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Predict(p, []float64{1, 2, 3})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
