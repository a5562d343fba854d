// Package imageio exports single samples as grayscale images for visual
// inspection: plain PGM as the default debug format, PNG for viewers that
// cannot read PGM.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// MaxGray is the maximum gray value written to PGM headers.
const MaxGray = 255

// ErrSizeMismatch reports a pixel slice that does not hold width×height values.
var ErrSizeMismatch = errors.New("pixel count does not match image size")

// Gray maps a normalized pixel to a gray level: int(v×255) clamped to [0, 255].
// NaN maps to 0.
func Gray(v float64) uint8 {
	g := float32(v) * MaxGray
	if math32.IsNaN(g) {
		return 0
	}
	return uint8(math32.Max(0, math32.Min(MaxGray, g)))
}

func checkSize(pixels []float64, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(pixels), width, height)
	}
	return nil
}

// WritePGM writes pixels (row-major, values in [0, 1]) as a plain "P2" PGM.
//
// Layout:
//
//	P2
//	<width> <height>
//	255
//	<one line of space-separated gray levels per image row>
func WritePGM(w io.Writer, pixels []float64, width, height int) error {
	if err := checkSize(pixels, width, height); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P2\n%d %d\n%d\n", width, height, MaxGray)

	row := make([]string, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = strconv.Itoa(int(Gray(pixels[y*width+x])))
		}
		bw.WriteString(strings.Join(row, " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePNG writes pixels (row-major, values in [0, 1]) as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, pixels []float64, width, height int) error {
	if err := checkSize(pixels, width, height); err != nil {
		return err
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: Gray(pixels[y*width+x])})
		}
	}
	return png.Encode(w, img)
}

// Save writes pixels to path, as PNG when the extension is ".png" and as PGM otherwise.
func Save(path string, pixels []float64, width, height int) (err error) {
	write := WritePGM
	if strings.EqualFold(filepath.Ext(path), ".png") {
		write = WritePNG
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for image export
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return write(file, pixels, width, height)
}
