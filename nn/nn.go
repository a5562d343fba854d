// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/internal/nn"
)

// Params holds the weights and biases of the network.
type Params = nn.Params

// Cache holds the intermediate values of one forward pass.
type Cache = nn.Cache

// Gradients holds the loss gradients for every parameter.
type Gradients = nn.Gradients

// InitConfig holds the layer sizes of the network.
type InitConfig = nn.InitConfig

// DefaultInitConfig returns the MNIST layout: 784 → 10 → 10.
func DefaultInitConfig() InitConfig {
	return nn.DefaultInitConfig()
}

// NewRand returns a deterministic source for seed >= 0 and a randomly seeded one otherwise.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// InitParams draws every weight and bias uniformly from [-0.5, 0.5].
//
// Example:
//
//	params, err := nn.InitParams(nn.DefaultInitConfig(), nn.NewRand(42))
func InitParams(cfg InitConfig, rng *rand.Rand) (Params, error) {
	return nn.InitParams(cfg, rng)
}

// Activations

// ReLU returns max(0, z) elementwise.
func ReLU(z mat.Matrix) *mat.Dense {
	return nn.ReLU(z)
}

// ReLUDerivative returns 1 where z > 0 and 0 elsewhere.
func ReLUDerivative(z mat.Matrix) *mat.Dense {
	return nn.ReLUDerivative(z)
}

// Softmax normalizes every column of z into a probability distribution.
func Softmax(z mat.Matrix) *mat.Dense {
	return nn.Softmax(z)
}

// Propagation

// Forward runs the network on x ([features, samples]).
func Forward(p Params, x mat.Matrix) (Cache, error) {
	return nn.Forward(p, x)
}

// Backward computes the softmax cross-entropy gradients for one batch.
func Backward(c Cache, p Params, x mat.Matrix, labels []int) (Gradients, error) {
	return nn.Backward(c, p, x, labels)
}

// OneHotEncode returns a [classes, len(labels)] matrix with a single 1 per column.
func OneHotEncode(labels []int, classes int) (*mat.Dense, error) {
	return nn.OneHotEncode(labels, classes)
}

// Loss and metrics

// CrossEntropy returns the mean negative log-probability of the true labels.
func CrossEntropy(probs mat.Matrix, labels []int) (float64, error) {
	return nn.CrossEntropy(probs, labels)
}

// Loss runs a forward pass and returns the cross-entropy of the result.
func Loss(p Params, x mat.Matrix, labels []int) (float64, error) {
	return nn.Loss(p, x, labels)
}

// Predictions returns the argmax of every column of probs.
func Predictions(probs mat.Matrix) []int {
	return nn.Predictions(probs)
}

// Accuracy returns the fraction of predictions equal to labels.
func Accuracy(predictions, labels []int) (float64, error) {
	return nn.Accuracy(predictions, labels)
}

// Evaluate returns the accuracy of p on x.
func Evaluate(p Params, x mat.Matrix, labels []int) (float64, error) {
	return nn.Evaluate(p, x, labels)
}

// Inference

// RunImage returns the output activations for a single image.
func RunImage(p Params, image []float64) ([]float64, error) {
	return nn.RunImage(p, image)
}

// Predict returns the most likely class of a single image.
func Predict(p Params, image []float64) (int, error) {
	return nn.Predict(p, image)
}
