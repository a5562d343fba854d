package serialization

import "encoding/binary"

// Format constants.
const (
	HeaderFields = 6                // W1 rows, W1 cols, W2 rows, W2 cols, b1 rows, b2 rows
	HeaderSize   = HeaderFields * 4 // bytes
	ValueSize    = 4                // float32
)

// byteOrder is the byte order of every header field and payload value.
var byteOrder = binary.LittleEndian

// Header holds the matrix dimensions stored at the start of a parameter file.
type Header struct {
	W1Rows int32
	W1Cols int32
	W2Rows int32
	W2Cols int32
	B1Rows int32
	B2Rows int32
}

// Sizes returns the input, hidden and output layer sizes described by h.
func (h Header) Sizes() (input, hidden, output int) {
	return int(h.W1Cols), int(h.W1Rows), int(h.W2Rows)
}

// PayloadValues returns the number of float32 values following the header.
func (h Header) PayloadValues() int64 {
	w1 := int64(h.W1Rows) * int64(h.W1Cols)
	w2 := int64(h.W2Rows) * int64(h.W2Cols)
	return w1 + w2 + int64(h.B1Rows) + int64(h.B2Rows)
}

// FileSize returns the expected size in bytes of a file with header h.
func (h Header) FileSize() int64 {
	return HeaderSize + h.PayloadValues()*ValueSize
}

// headerFor builds the header describing a network of the given sizes.
func headerFor(input, hidden, output int) Header {
	//nolint:gosec // G115: sizes are bounded by ValidateHeader before writing
	return Header{
		W1Rows: int32(hidden),
		W1Cols: int32(input),
		W2Rows: int32(output),
		W2Cols: int32(hidden),
		B1Rows: int32(hidden),
		B2Rows: int32(output),
	}
}
