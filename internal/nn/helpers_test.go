package nn

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// newTestParams returns seeded parameters for an in→hidden→out network.
func newTestParams(t testing.TB, in, hidden, out int, seed int64) Params {
	t.Helper()
	p, err := InitParams(InitConfig{InputSize: in, HiddenSize: hidden, OutputSize: out}, NewRand(seed))
	require.NoError(t, err)
	return p
}

// newTestBatch returns a [rows, cols] matrix with values in [0, 1).
func newTestBatch(rows, cols int, seed int64) *mat.Dense {
	rng := NewRand(seed)
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(rows, cols, data)
}
