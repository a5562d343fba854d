package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Synthetic image geometry, matching MNIST.
const (
	SyntheticSide     = 28
	SyntheticFeatures = SyntheticSide * SyntheticSide
	SyntheticClasses  = 10
)

// syntheticPattern fills a horizontal band whose position encodes the digit.
// This is NOT realistic MNIST data, just enough to exercise the pipeline.
func syntheticPattern(digit int) []float64 {
	img := make([]float64, SyntheticFeatures)
	startRow := digit * 2 // 0, 2, 4, ..., 18
	for row := startRow; row < startRow+8 && row < SyntheticSide; row++ {
		for col := 5; col < 23; col++ {
			img[row*SyntheticSide+col] = 0.8
		}
	}
	return img
}

// Embedded returns the 10 noiseless synthetic patterns, one per digit.
func Embedded() Dataset {
	images := mat.NewDense(SyntheticFeatures, SyntheticClasses, nil)
	labels := make([]int, SyntheticClasses)
	for digit := 0; digit < SyntheticClasses; digit++ {
		images.SetCol(digit, syntheticPattern(digit))
		labels[digit] = digit
	}
	return Dataset{Images: images, Labels: labels}
}

// Synthetic returns n samples cycling through the digit patterns, each pixel
// perturbed by uniform noise in [-noise, noise] and clamped to [0, 1].
func Synthetic(n int, noise float64, rng *rand.Rand) Dataset {
	if n <= 0 {
		return Dataset{}
	}

	images := mat.NewDense(SyntheticFeatures, n, nil)
	labels := make([]int, n)
	for j := 0; j < n; j++ {
		digit := j % SyntheticClasses
		img := syntheticPattern(digit)
		for i, v := range img {
			img[i] = min(max(v+(rng.Float64()*2-1)*noise, 0), 1)
		}
		images.SetCol(j, img)
		labels[j] = digit
	}
	return Dataset{Images: images, Labels: labels}
}
