// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the gradient-descent parameter update.
//
// # Overview
//
// This package contains:
//   - SGD: full-batch gradient descent with a fixed learning rate
//   - Update: the pure update function p - alpha*g
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/digitnet/nn"
//	    "github.com/born-ml/digitnet/optim"
//	)
//
//	func main() {
//	    optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.15})
//
//	    cache, _ := nn.Forward(params, x)
//	    grads, _ := nn.Backward(cache, params, x, labels)
//	    params, err = optimizer.Step(params, grads)
//	}
package optim
