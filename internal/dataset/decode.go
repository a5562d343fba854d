package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/parallel"
)

// Decode normalizes raw IDX images to [0, 1] and pairs them with labels.
//
// maxSamples limits the number of samples (0 = all).
func Decode(images ImageSet, labels []byte, maxSamples int) (Dataset, error) {
	if images.Count != len(labels) {
		return Dataset{}, fmt.Errorf("%w: image count (%d) != label count (%d)", ErrCountMismatch, images.Count, len(labels))
	}

	n := images.Count
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}
	if n == 0 {
		return Dataset{}, ErrEmptyDataset
	}

	features := images.ImageSize()
	data := make([]float64, features*n)
	ys := make([]int, n)

	// Sample s becomes column s: element (f, s) lives at data[f*n+s].
	parallel.ForRange(n, func(start, end int) {
		for s := start; s < end; s++ {
			for f, px := range images.Image(s) {
				data[f*n+s] = float64(px) / 255.0
			}
			ys[s] = int(labels[s])
		}
	}, parallel.DefaultConfig())

	return Dataset{Images: mat.NewDense(features, n, data), Labels: ys}, nil
}
