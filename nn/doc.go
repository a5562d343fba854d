// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the two-layer digit classifier.
//
// # Overview
//
// This package contains:
//   - Parameters: Params (W1, B1, W2, B2) and InitParams
//   - Activations: ReLU, ReLUDerivative, Softmax
//   - Propagation: Forward, Backward, OneHotEncode
//   - Loss and metrics: CrossEntropy, Loss, Accuracy, Evaluate
//   - Inference: RunImage, Predict
//
// Samples are stored one per column: an input batch is a gonum matrix of
// shape [features, samples].
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/digitnet/nn"
//	)
//
//	func main() {
//	    params, err := nn.InitParams(nn.DefaultInitConfig(), nn.NewRand(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Classify one 784-pixel image
//	    digit, err := nn.Predict(params, image)
//	}
//
// # Training Step
//
//	cache, err := nn.Forward(params, x)
//	grads, err := nn.Backward(cache, params, x, labels)
//	params, err = optim.Update(params, grads, 0.15)
package nn
