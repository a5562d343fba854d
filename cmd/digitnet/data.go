package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/born-ml/digitnet/internal/dataset"
	"github.com/born-ml/digitnet/internal/nn"
)

// syntheticNoise is the pixel noise of generated samples.
const syntheticNoise = 0.2

// loadSplit loads the training or test split from dataDir, or generates n
// synthetic samples when synthetic is set (n <= 0 selects defaultN).
func loadSplit(dataDir string, train, synthetic bool, n, defaultN int, seed int64) (dataset.Dataset, error) {
	if synthetic {
		if n <= 0 {
			n = defaultN
		}
		if !train && seed >= 0 {
			seed++
		}
		return dataset.Synthetic(n, syntheticNoise, nn.NewRand(seed)), nil
	}

	d, err := dataset.LoadMNIST(dataDir, train, n)
	if errors.Is(err, os.ErrNotExist) {
		return dataset.Dataset{}, fmt.Errorf("%w: %w", errMissingData, err)
	}
	return d, err
}
