package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
)

// IDX magic numbers.
const (
	ImageMagic = 2051 // 0x00000803, unsigned bytes, 3 dimensions
	LabelMagic = 2049 // 0x00000801, unsigned bytes, 1 dimension
)

// Header limits checked before any payload is read.
const (
	maxItems      = 1 << 24 // images or labels per file
	maxPixelBytes = 1 << 31 // total pixel payload of an image file
)

// ImageSet is the raw content of an IDX image file.
type ImageSet struct {
	Count  int
	Rows   int
	Cols   int
	Pixels []byte // Count images of Rows*Cols bytes, row-major, concatenated
}

// ImageSize returns the number of pixels per image.
func (s ImageSet) ImageSize() int {
	return s.Rows * s.Cols
}

// Image returns the raw pixels of image i.
func (s ImageSet) Image(i int) []byte {
	size := s.ImageSize()
	return s.Pixels[i*size : (i+1)*size]
}

// ReadImages reads an IDX image stream.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
func ReadImages(r io.Reader) (ImageSet, error) {
	var header [4]uint32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return ImageSet{}, fmt.Errorf("failed to read image header: %w", err)
	}

	magic, count, rows, cols := header[0], header[1], header[2], header[3]
	if magic != ImageMagic {
		return ImageSet{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, magic, ImageMagic)
	}
	if count > maxItems || rows == 0 || cols == 0 || rows > 1<<12 || cols > 1<<12 {
		return ImageSet{}, fmt.Errorf("%w: %d images of %dx%d", ErrInvalidHeader, count, rows, cols)
	}
	total := uint64(count) * uint64(rows) * uint64(cols)
	if total > maxPixelBytes {
		return ImageSet{}, fmt.Errorf("%w: %d images of %dx%d exceed %d pixel bytes",
			ErrInvalidHeader, count, rows, cols, uint64(maxPixelBytes))
	}

	set := ImageSet{Count: int(count), Rows: int(rows), Cols: int(cols)}
	pixels, err := readPayload(r, int64(total))
	if err != nil {
		return ImageSet{}, fmt.Errorf("failed to read %d images: %w", set.Count, err)
	}
	set.Pixels = pixels

	return set, nil
}

// ReadLabels reads an IDX label stream.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func ReadLabels(r io.Reader) ([]byte, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read label header: %w", err)
	}

	magic, count := header[0], header[1]
	if magic != LabelMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMagic, magic, LabelMagic)
	}
	if count > maxItems {
		return nil, fmt.Errorf("%w: %d labels", ErrInvalidHeader, count)
	}

	labels, err := readPayload(r, int64(count))
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	return labels, nil
}

// readPayload reads exactly n bytes, growing the buffer as data arrives so a
// header that overstates the payload cannot force a large allocation.
func readPayload(r io.Reader, n int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) < n {
		return nil, fmt.Errorf("got %d of %d bytes: %w", len(data), n, io.ErrUnexpectedEOF)
	}
	return data, nil
}

// WriteImages encodes set in IDX image format.
func WriteImages(w io.Writer, set ImageSet) error {
	if len(set.Pixels) != set.Count*set.ImageSize() {
		return fmt.Errorf("%w: %d pixels for %d images of %dx%d",
			ErrInvalidHeader, len(set.Pixels), set.Count, set.Rows, set.Cols)
	}
	header := [4]uint32{ImageMagic, uint32(set.Count), uint32(set.Rows), uint32(set.Cols)} //nolint:gosec // G115: bounded by maxItems
	if err := binary.Write(w, binary.BigEndian, header); err != nil {
		return fmt.Errorf("failed to write image header: %w", err)
	}
	if _, err := w.Write(set.Pixels); err != nil {
		return fmt.Errorf("failed to write pixels: %w", err)
	}
	return nil
}

// WriteLabels encodes labels in IDX label format.
func WriteLabels(w io.Writer, labels []byte) error {
	header := [2]uint32{LabelMagic, uint32(len(labels))} //nolint:gosec // G115: bounded by maxItems
	if err := binary.Write(w, binary.BigEndian, header); err != nil {
		return fmt.Errorf("failed to write label header: %w", err)
	}
	if _, err := w.Write(labels); err != nil {
		return fmt.Errorf("failed to write labels: %w", err)
	}
	return nil
}
