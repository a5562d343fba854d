// Package loader reads MNIST datasets and reads and writes trained parameters.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/digitnet/loader"
//	    "github.com/born-ml/digitnet/nn"
//	)
//
//	// Load the test split (plain or .gz IDX files)
//	testSet, err := loader.LoadMNIST("data", false, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load trained parameters
//	params, err := loader.LoadParams("models/model.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	accuracy, err := nn.Evaluate(params, testSet.Images, testSet.Labels)
package loader

import (
	"math/rand"

	"github.com/born-ml/digitnet/internal/dataset"
	"github.com/born-ml/digitnet/internal/serialization"
	"github.com/born-ml/digitnet/nn"
)

// Dataset pairs a [features, samples] image matrix with its labels.
type Dataset = dataset.Dataset

// Dataset errors.
var (
	ErrInvalidMagic    = dataset.ErrInvalidMagic
	ErrCountMismatch   = dataset.ErrCountMismatch
	ErrEmptyDataset    = dataset.ErrEmptyDataset
	ErrFeatureMismatch = dataset.ErrFeatureMismatch
)

// Parameter file errors.
var (
	ErrInvalidHeader    = serialization.ErrInvalidHeader
	ErrTruncated        = serialization.ErrTruncated
	ErrNonFinite        = serialization.ErrNonFinite
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
)

// LoadMNIST loads the training or test split from dataDir.
//
// maxSamples limits the number of samples (0 = all).
func LoadMNIST(dataDir string, train bool, maxSamples int) (Dataset, error) {
	return dataset.LoadMNIST(dataDir, train, maxSamples)
}

// LoadDataset reads an IDX image file and an IDX label file.
func LoadDataset(imagePath, labelPath string, maxSamples int) (Dataset, error) {
	return dataset.Load(imagePath, labelPath, maxSamples)
}

// Synthetic returns n generated 28×28 digit patterns for running without MNIST files.
func Synthetic(n int, noise float64, rng *rand.Rand) Dataset {
	return dataset.Synthetic(n, noise, rng)
}

// LoadParams reads trained parameters from path.
func LoadParams(path string) (nn.Params, error) {
	return serialization.LoadFile(path)
}

// SaveParams writes p to path, creating parent directories as needed.
func SaveParams(path string, p nn.Params) error {
	return serialization.SaveFile(path, p)
}

// Checksum returns the SHA-256 checksum of the file at path.
func Checksum(path string) ([32]byte, error) {
	return serialization.FileChecksum(path)
}
