package dataset

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Standard MNIST file names. The label files are also looked up with a dot
// before "idx1" and every name is also tried with a .gz suffix.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// gzipMagic is the two-byte gzip member header.
var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var errs []error
	for i := len(rc.closers) - 1; i >= 0; i-- {
		errs = append(errs, rc.closers[i].Close())
	}
	return errors.Join(errs...)
}

// Open opens an IDX file, transparently decompressing gzip content.
func Open(path string) (io.ReadCloser, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for dataset loading
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(file)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(head) < len(gzipMagic) || head[0] != gzipMagic[0] || head[1] != gzipMagic[1] {
		return &readCloser{Reader: br, closers: []io.Closer{file}}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
	}
	return &readCloser{Reader: zr, closers: []io.Closer{file, zr}}, nil
}

// LoadImages reads an IDX image file.
func LoadImages(path string) (ImageSet, error) {
	rc, err := Open(path)
	if err != nil {
		return ImageSet{}, err
	}
	defer rc.Close()

	return ReadImages(rc)
}

// LoadLabels reads an IDX label file.
func LoadLabels(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadLabels(rc)
}

// Load reads an image file and a label file into a normalized Dataset.
//
// maxSamples limits the number of samples (0 = all).
func Load(imagePath, labelPath string, maxSamples int) (Dataset, error) {
	images, err := LoadImages(imagePath)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to load images: %w", err)
	}

	labels, err := LoadLabels(labelPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to load labels: %w", err)
	}

	return Decode(images, labels, maxSamples)
}

// LoadMNIST loads the training (60,000 samples) or test (10,000 samples) split from dataDir.
//
// Expected files in dataDir:
//   - train-images-idx3-ubyte (or t10k-images-idx3-ubyte for test)
//   - train-labels-idx1-ubyte (or t10k-labels-idx1-ubyte for test)
//
// Each may also carry a .gz suffix.
func LoadMNIST(dataDir string, train bool, maxSamples int) (Dataset, error) {
	imageName, labelName := TestImagesFile, TestLabelsFile
	if train {
		imageName, labelName = TrainImagesFile, TrainLabelsFile
	}

	imagePath, err := locate(dataDir, imageName)
	if err != nil {
		return Dataset{}, err
	}
	labelPath, err := locate(dataDir, labelName, dottedName(labelName))
	if err != nil {
		return Dataset{}, err
	}

	return Load(imagePath, labelPath, maxSamples)
}

// locate returns the first existing candidate, trying each name plain and gzipped.
func locate(dir string, names ...string) (string, error) {
	for _, name := range names {
		for _, candidate := range []string{name, name + ".gz"} {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%s not found in %s: %w", names[0], dir, os.ErrNotExist)
}

// dottedName maps "x-labels-idx1-ubyte" to "x-labels.idx1-ubyte".
func dottedName(name string) string {
	return strings.Replace(name, "-idx1-", ".idx1-", 1)
}
