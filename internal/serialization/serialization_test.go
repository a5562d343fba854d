package serialization

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/nn"
	"github.com/born-ml/digitnet/internal/tensor"
)

// smallParams returns a 3→2→1 network with easily recognizable values.
func smallParams() nn.Params {
	return nn.Params{
		W1: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		B1: mat.NewDense(2, 1, []float64{7, 8}),
		W2: mat.NewDense(1, 2, []float64{9, 10}),
		B2: mat.NewDense(1, 1, []float64{11}),
	}
}

func encode(t *testing.T, p nn.Params) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteParams(&buf, p))
	return buf.Bytes()
}

func TestWriteParams_Layout(t *testing.T) {
	raw := encode(t, smallParams())

	header := Header{W1Rows: 2, W1Cols: 3, W2Rows: 1, W2Cols: 2, B1Rows: 2, B2Rows: 1}
	require.Len(t, raw, int(header.FileSize()))

	var got [HeaderFields]int32
	require.NoError(t, binary.Read(bytes.NewReader(raw[:HeaderSize]), binary.LittleEndian, &got))
	assert.Equal(t, [HeaderFields]int32{2, 3, 1, 2, 2, 1}, got)

	values := make([]float32, header.PayloadValues())
	require.NoError(t, binary.Read(bytes.NewReader(raw[HeaderSize:]), binary.LittleEndian, values))
	// W1 column-major, then W2, b1, b2.
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6, 9, 10, 7, 8, 11}, values)
}

func TestRoundTrip(t *testing.T) {
	p, err := nn.InitParams(nn.InitConfig{InputSize: 784, HiddenSize: 10, OutputSize: 10}, nn.NewRand(7))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "models", "model.bin")
	require.NoError(t, SaveFile(path, p))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	pairs := []struct {
		name      string
		want, got *mat.Dense
	}{
		{"W1", p.W1, loaded.W1},
		{"B1", p.B1, loaded.B1},
		{"W2", p.W2, loaded.W2},
		{"B2", p.B2, loaded.B2},
	}
	for _, pair := range pairs {
		require.Equal(t, tensor.ShapeOf(pair.want), tensor.ShapeOf(pair.got), pair.name)
		rows, cols := pair.want.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				want := float64(float32(pair.want.At(i, j)))
				assert.Equal(t, want, pair.got.At(i, j), "%s(%d,%d)", pair.name, i, j)
			}
		}
	}

	// A float32-exact network survives unchanged.
	again, err := ReadParams(bytes.NewReader(encode(t, loaded)))
	require.NoError(t, err)
	assert.True(t, mat.Equal(loaded.W1, again.W1))
	assert.True(t, mat.Equal(loaded.B2, again.B2))
}

func TestReadParams_Truncated(t *testing.T) {
	raw := encode(t, smallParams())

	for _, n := range []int{0, 10, HeaderSize, len(raw) - 1} {
		_, err := ReadParams(bytes.NewReader(raw[:n]))
		assert.ErrorIs(t, err, ErrTruncated, "length %d", n)
	}
}

func TestReadParams_BadHeader(t *testing.T) {
	tests := []struct {
		name   string
		header [HeaderFields]int32
	}{
		{"zero rows", [HeaderFields]int32{0, 3, 1, 2, 2, 1}},
		{"negative cols", [HeaderFields]int32{2, -3, 1, 2, 2, 1}},
		{"hidden mismatch", [HeaderFields]int32{2, 3, 1, 5, 2, 1}},
		{"bias mismatch", [HeaderFields]int32{2, 3, 1, 2, 2, 4}},
		{"too large", [HeaderFields]int32{MaxDimension + 1, 3, 1, MaxDimension + 1, MaxDimension + 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, tt.header))
			buf.Write(make([]byte, 64))

			_, err := ReadParams(&buf)
			assert.ErrorIs(t, err, ErrInvalidHeader)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestReadParams_NonFinite(t *testing.T) {
	raw := encode(t, smallParams())
	// Overwrite the first W2 value with NaN.
	binary.LittleEndian.PutUint32(raw[HeaderSize+6*ValueSize:], math.Float32bits(float32(math.NaN())))

	_, err := ReadParams(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Contains(t, err.Error(), "W2")
}

func TestWriteParams_Errors(t *testing.T) {
	t.Run("non-finite", func(t *testing.T) {
		p := smallParams()
		p.B1.Set(0, 0, math.Inf(1))
		assert.ErrorIs(t, WriteParams(&bytes.Buffer{}, p), ErrNonFinite)
	})

	t.Run("overflows float32", func(t *testing.T) {
		p := smallParams()
		p.W1.Set(1, 2, 1e300)
		var buf bytes.Buffer
		assert.ErrorIs(t, WriteParams(&buf, p), ErrNonFinite)
		assert.Zero(t, buf.Len())
	})

	t.Run("missing matrix", func(t *testing.T) {
		p := smallParams()
		p.W2 = nil
		assert.ErrorIs(t, WriteParams(&bytes.Buffer{}, p), tensor.ErrShapeMismatch)
	})
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}
