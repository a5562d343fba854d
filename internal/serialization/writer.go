package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/nn"
)

// payload is one matrix in file order.
type payload struct {
	name string
	m    *mat.Dense
}

// filePayloads lists the matrices of p in the order they are stored.
func filePayloads(p nn.Params) []payload {
	return []payload{{"W1", p.W1}, {"W2", p.W2}, {"b1", p.B1}, {"b2", p.B2}}
}

// WriteParams encodes p to w.
//
// Every value is narrowed to float32; values that are not finite after
// narrowing are rejected before anything is written.
func WriteParams(w io.Writer, p nn.Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	header := headerFor(p.Sizes())
	if err := ValidateHeader(header); err != nil {
		return err
	}

	payloads := filePayloads(p)
	values := make([][]float32, len(payloads))
	for i, pl := range payloads {
		values[i] = columnMajor(pl.m)
		if err := validateValues(pl.name, values[i]); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, pl := range payloads {
		if err := binary.Write(bw, byteOrder, values[i]); err != nil {
			return fmt.Errorf("failed to write %s: %w", pl.name, err)
		}
	}
	return bw.Flush()
}

// SaveFile writes p to path, creating parent directories as needed.
func SaveFile(path string, p nn.Params) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return WriteParams(file, p)
}

// columnMajor flattens m column by column, narrowing to float32.
func columnMajor(m *mat.Dense) []float32 {
	rows, cols := m.Dims()
	out := make([]float32, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[j*rows+i] = float32(m.At(i, j))
		}
	}
	return out
}
