// Package optim applies gradient updates to the network parameters.
//
// Only plain gradient descent is provided:
//
//	param = param - lr * gradient
//
// Updates are pure: the optimizer returns a new nn.Params and never writes to
// the parameters or gradients it was given.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.15})
//
//	cache, _ := nn.Forward(params, x)
//	grads, _ := nn.Backward(cache, params, x, y)
//	params, err = sgd.Step(params, grads)
package optim

import "github.com/born-ml/digitnet/internal/nn"

// Optimizer is the interface implemented by update rules.
type Optimizer interface {
	// Step returns the parameters after one update with the given gradients.
	Step(p nn.Params, g nn.Gradients) (nn.Params, error)

	// GetLR returns the current learning rate.
	GetLR() float64
}
