// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/digitnet/internal/optim"
	"github.com/born-ml/digitnet/nn"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD represents the full-batch gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = optim.DefaultLR

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.15})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Update returns p - alpha*g for every parameter/gradient pair.
func Update(p nn.Params, g nn.Gradients, alpha float64) (nn.Params, error) {
	return optim.Update(p, g, alpha)
}
