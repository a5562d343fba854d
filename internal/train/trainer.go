// Package train runs full-batch gradient descent for the two-layer classifier
// and reports training and validation accuracy on a fixed schedule.
package train

import (
	"fmt"
	"time"

	"github.com/born-ml/digitnet/internal/dataset"
	"github.com/born-ml/digitnet/internal/nn"
	"github.com/born-ml/digitnet/internal/optim"
)

// Trainer runs the training loop for one configuration.
type Trainer struct {
	cfg      Config
	reporter Reporter
}

// NewTrainer creates a trainer. A nil reporter discards progress.
//
// Zero ReportEvery and Init fall back to their defaults; Seed is used as given,
// so pass DefaultConfig() for randomly seeded runs.
func NewTrainer(cfg Config, reporter Reporter) *Trainer {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Trainer{cfg: cfg.withDefaults(), reporter: reporter}
}

// Config returns the effective configuration, defaults applied.
func (t *Trainer) Config() Config {
	return t.cfg
}

// Train is shorthand for NewTrainer(cfg, reporter).Run(trainSet, valSet).
func Train(trainSet, valSet dataset.Dataset, cfg Config, reporter Reporter) (nn.Params, error) {
	return NewTrainer(cfg, reporter).Run(trainSet, valSet)
}

// Run trains freshly initialized parameters for exactly cfg.Iterations iterations.
//
// Each iteration shuffles both datasets with independent permutations drawn
// from the one seeded source, runs forward, backward and update on the whole
// training set, and on report iterations measures the pre-update training
// accuracy and the post-update validation accuracy. The caller's datasets are
// never modified.
func (t *Trainer) Run(trainSet, valSet dataset.Dataset) (nn.Params, error) {
	cfg := t.cfg
	if err := cfg.Validate(); err != nil {
		return nn.Params{}, err
	}
	if err := checkDataset("training", trainSet, cfg.Init); err != nil {
		return nn.Params{}, err
	}
	if err := checkDataset("validation", valSet, cfg.Init); err != nil {
		return nn.Params{}, err
	}

	rng := nn.NewRand(cfg.Seed)
	params, err := nn.InitParams(cfg.Init, rng)
	if err != nil {
		return nn.Params{}, err
	}
	var optimizer optim.Optimizer = optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate})

	start := time.Now()
	for i := 1; i <= cfg.Iterations; i++ {
		batch := trainSet.Shuffle(rng)
		// The validation permutation is drawn every iteration but only
		// materialized when it is evaluated.
		valPerm := rng.Perm(valSet.Len())

		cache, err := nn.Forward(params, batch.Images)
		if err != nil {
			return nn.Params{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		grads, err := nn.Backward(cache, params, batch.Images, batch.Labels)
		if err != nil {
			return nn.Params{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		updated, err := optimizer.Step(params, grads)
		if err != nil {
			return nn.Params{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		params = updated

		if !cfg.shouldReport(i) {
			continue
		}
		progress, err := measure(cache, batch, params, valSet.Permute(valPerm))
		if err != nil {
			return nn.Params{}, fmt.Errorf("iteration %d: %w", i, err)
		}
		progress.Iteration = i
		progress.Elapsed = time.Since(start)
		t.reporter.Report(progress)
	}

	return params, nil
}

// measure computes loss and training accuracy from the pre-update cache and
// validation accuracy from the updated parameters.
func measure(cache nn.Cache, batch dataset.Dataset, params nn.Params, val dataset.Dataset) (Progress, error) {
	loss, err := nn.CrossEntropy(cache.A2, batch.Labels)
	if err != nil {
		return Progress{}, err
	}
	trainAcc, err := nn.Accuracy(nn.Predictions(cache.A2), batch.Labels)
	if err != nil {
		return Progress{}, err
	}
	valAcc, err := nn.Evaluate(params, val.Images, val.Labels)
	if err != nil {
		return Progress{}, err
	}
	return Progress{Loss: loss, TrainAccuracy: trainAcc, ValidationAccuracy: valAcc}, nil
}

// checkDataset verifies d is non-empty, paired, sized for the input layer and
// labelled within the output layer.
func checkDataset(name string, d dataset.Dataset, sizes nn.InitConfig) error {
	if err := d.Validate(sizes.OutputSize); err != nil {
		return fmt.Errorf("%s set: %w", name, err)
	}
	if d.Features() != sizes.InputSize {
		return fmt.Errorf("%s set: %w: %d features, network expects %d",
			name, dataset.ErrFeatureMismatch, d.Features(), sizes.InputSize)
	}
	return nil
}
