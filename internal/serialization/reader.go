package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/nn"
)

// ReadParams decodes parameters written by WriteParams.
func ReadParams(r io.Reader) (nn.Params, error) {
	var header Header
	if err := readValues(r, &header); err != nil {
		return nn.Params{}, fmt.Errorf("failed to read header: %w", err)
	}
	if err := ValidateHeader(header); err != nil {
		return nn.Params{}, err
	}

	shapes := []struct {
		name       string
		rows, cols int32
	}{
		{"W1", header.W1Rows, header.W1Cols},
		{"W2", header.W2Rows, header.W2Cols},
		{"b1", header.B1Rows, 1},
		{"b2", header.B2Rows, 1},
	}

	ms := make([]*mat.Dense, len(shapes))
	for i, s := range shapes {
		values := make([]float32, int(s.rows)*int(s.cols))
		if err := readValues(r, values); err != nil {
			return nn.Params{}, fmt.Errorf("failed to read %s: %w", s.name, err)
		}
		if err := validateValues(s.name, values); err != nil {
			return nn.Params{}, err
		}
		ms[i] = fromColumnMajor(int(s.rows), int(s.cols), values)
	}

	p := nn.Params{W1: ms[0], W2: ms[1], B1: ms[2], B2: ms[3]}
	if err := p.Validate(); err != nil {
		return nn.Params{}, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

// LoadFile reads parameters from path.
func LoadFile(path string) (nn.Params, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nn.Params{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadParams(bufio.NewReader(file))
}

// readValues reads fixed-size data, reporting a short read as ErrTruncated.
func readValues(r io.Reader, data any) error {
	err := binary.Read(r, byteOrder, data)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}

// fromColumnMajor rebuilds a rows×cols matrix from column-major values.
func fromColumnMajor(rows, cols int, values []float32) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Set(i, j, float64(values[j*rows+i]))
		}
	}
	return m
}
