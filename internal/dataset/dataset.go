// Package dataset loads MNIST-style IDX files into normalized sample matrices
// and provides the reordering helpers used by the training loop.
//
// A Dataset stores one sample per column: Images is [features, samples] and
// Labels[i] is the class of column i. Every method that reorders or slices a
// Dataset returns a new value and leaves the receiver untouched.
package dataset

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/tensor"
)

// Dataset pairs a sample matrix with its labels.
type Dataset struct {
	Images *mat.Dense // [features, samples], values in [0, 1]
	Labels []int      // [samples]
}

// New pairs images with labels after checking that the counts agree.
func New(images *mat.Dense, labels []int) (Dataset, error) {
	if images == nil || len(labels) == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	if _, cols := images.Dims(); cols != len(labels) {
		return Dataset{}, fmt.Errorf("%w: %d image columns, %d labels", ErrCountMismatch, cols, len(labels))
	}
	return Dataset{Images: images, Labels: labels}, nil
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Labels)
}

// Features returns the number of values per sample.
func (d Dataset) Features() int {
	if d.Images == nil {
		return 0
	}
	rows, _ := d.Images.Dims()
	return rows
}

// Column returns a copy of sample i.
func (d Dataset) Column(i int) []float64 {
	return tensor.Column(d.Images, i)
}

// Validate checks the image/label pairing and that every label is below numClasses.
func (d Dataset) Validate(numClasses int) error {
	if d.Len() == 0 || d.Images == nil {
		return ErrEmptyDataset
	}
	if _, cols := d.Images.Dims(); cols != d.Len() {
		return fmt.Errorf("%w: %d image columns, %d labels", ErrCountMismatch, cols, d.Len())
	}
	return tensor.CheckLabels("dataset", d.Labels, numClasses)
}

// Clone returns a deep copy.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Images: tensor.Clone(d.Images),
		Labels: append([]int(nil), d.Labels...),
	}
}

// Permute returns a dataset whose sample j is sample perm[j] of d.
func (d Dataset) Permute(perm []int) Dataset {
	rows, cols := d.Images.Dims()
	out := mat.NewDense(rows, cols, nil)
	labels := make([]int, len(perm))

	col := make([]float64, rows)
	for j, src := range perm {
		mat.Col(col, src, d.Images)
		out.SetCol(j, col)
		labels[j] = d.Labels[src]
	}
	return Dataset{Images: out, Labels: labels}
}

// Shuffle returns a copy of d with samples reordered by one random
// permutation, keeping every image paired with its label.
func (d Dataset) Shuffle(rng *rand.Rand) Dataset {
	if d.Len() == 0 {
		return d
	}
	return d.Permute(rng.Perm(d.Len()))
}

// Slice returns a copy of samples [start, end).
func (d Dataset) Slice(start, end int) Dataset {
	start = max(start, 0)
	end = min(end, d.Len())
	if start >= end {
		return Dataset{}
	}
	rows := d.Features()
	return Dataset{
		Images: mat.DenseCopyOf(d.Images.Slice(0, rows, start, end)),
		Labels: append([]int(nil), d.Labels[start:end]...),
	}
}

// Head returns a copy of the first n samples, or all of them when n <= 0.
func (d Dataset) Head(n int) Dataset {
	if n <= 0 || n >= d.Len() {
		return d.Clone()
	}
	return d.Slice(0, n)
}

// Split splits the dataset into train and validation sets.
//
// validationRatio is the fraction of trailing samples moved to the validation set.
func (d Dataset) Split(validationRatio float64) (Dataset, Dataset) {
	splitIdx := int(float64(d.Len()) * (1.0 - validationRatio))
	return d.Slice(0, splitIdx), d.Slice(splitIdx, d.Len())
}
