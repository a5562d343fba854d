package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/digitnet/internal/nn"
)

// ErrInvalidConfig is returned for hyperparameters the loop cannot run with.
var ErrInvalidConfig = errors.New("invalid training config")

// Default hyperparameters.
const (
	DefaultLearningRate = 0.15
	DefaultIterations   = 650
	DefaultReportEvery  = 10
)

// Config holds the training hyperparameters.
//
// Start from DefaultConfig: its Seed of -1 draws a fresh random seed per run.
// A literal Config keeps Seed 0, which like every non-negative seed makes the
// run reproducible.
type Config struct {
	LearningRate float64       // Step size alpha (default: 0.15)
	Iterations   int           // Full-batch iterations (default: 650)
	ReportEvery  int           // Report at iteration 1 and every N-th (default: 10, 0 = default)
	Seed         int64         // Seed for initialization and shuffling (< 0 = random, >= 0 fixed)
	Init         nn.InitConfig // Layer sizes (zero value = 784→10→10)
}

// DefaultConfig returns the standard MNIST training setup.
func DefaultConfig() Config {
	return Config{
		LearningRate: DefaultLearningRate,
		Iterations:   DefaultIterations,
		ReportEvery:  DefaultReportEvery,
		Seed:         -1,
		Init:         nn.DefaultInitConfig(),
	}
}

// withDefaults fills the optional zero-valued fields.
func (c Config) withDefaults() Config {
	if c.ReportEvery == 0 {
		c.ReportEvery = DefaultReportEvery
	}
	if c.Init == (nn.InitConfig{}) {
		c.Init = nn.DefaultInitConfig()
	}
	return c
}

// Validate checks that the loop can run with c.
func (c Config) Validate() error {
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("%w: learning rate must be positive and finite, got %v", ErrInvalidConfig, c.LearningRate)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.ReportEvery < 1 {
		return fmt.Errorf("%w: report interval must be >= 1, got %d", ErrInvalidConfig, c.ReportEvery)
	}
	if c.Init.InputSize <= 0 || c.Init.HiddenSize <= 0 || c.Init.OutputSize <= 0 {
		return fmt.Errorf("%w: layer sizes must be positive, got %d→%d→%d",
			ErrInvalidConfig, c.Init.InputSize, c.Init.HiddenSize, c.Init.OutputSize)
	}
	return nil
}

// shouldReport reports whether iteration i (1-indexed) emits progress.
func (c Config) shouldReport(i int) bool {
	return i == 1 || i%c.ReportEvery == 0
}
