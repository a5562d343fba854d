// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"log"

	"github.com/born-ml/digitnet/internal/dataset"
	"github.com/born-ml/digitnet/internal/train"
	"github.com/born-ml/digitnet/nn"
)

// Config holds the training hyperparameters.
type Config = train.Config

// Progress is one training report.
type Progress = train.Progress

// Reporter receives training progress.
type Reporter = train.Reporter

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc = train.ReporterFunc

// HistoryReporter records every report.
type HistoryReporter = train.HistoryReporter

// MultiReporter forwards every report to each reporter in order.
type MultiReporter = train.MultiReporter

// LogReporter writes one line per report to a logger.
type LogReporter = train.LogReporter

// Trainer runs the training loop for one configuration.
type Trainer = train.Trainer

// ErrInvalidConfig is returned for hyperparameters the loop cannot run with.
var ErrInvalidConfig = train.ErrInvalidConfig

// DefaultConfig returns the standard MNIST training setup.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// NewLogReporter creates a LogReporter. A nil logger means log.Default().
func NewLogReporter(logger *log.Logger) *LogReporter {
	return train.NewLogReporter(logger)
}

// NewTrainer creates a trainer. A nil reporter discards progress.
func NewTrainer(cfg Config, reporter Reporter) *Trainer {
	return train.NewTrainer(cfg, reporter)
}

// Train trains freshly initialized parameters on trainSet, reporting
// validation accuracy on valSet.
func Train(trainSet, valSet dataset.Dataset, cfg Config, reporter Reporter) (nn.Params, error) {
	return train.Train(trainSet, valSet, cfg, reporter)
}
