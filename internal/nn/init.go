package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// initBound is the half-width of the uniform initialization range.
const initBound = 0.5

// InitConfig holds the layer sizes of the network.
type InitConfig struct {
	InputSize  int // Features per sample (default: 784)
	HiddenSize int // Hidden ReLU units (default: 10)
	OutputSize int // Classes (default: 10)
}

// DefaultInitConfig returns the MNIST layout: 784 → 10 → 10.
func DefaultInitConfig() InitConfig {
	return InitConfig{
		InputSize:  784,
		HiddenSize: 10,
		OutputSize: 10,
	}
}

// NewRand returns a deterministic source for seed >= 0 and a randomly seeded one otherwise.
func NewRand(seed int64) *rand.Rand {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	}
	return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // Not security-critical
}

// InitParams draws every weight and bias independently from U(-0.5, 0.5).
//
// A nil rng is replaced with a randomly seeded one.
func InitParams(cfg InitConfig, rng *rand.Rand) (Params, error) {
	if cfg.InputSize <= 0 || cfg.HiddenSize <= 0 || cfg.OutputSize <= 0 {
		return Params{}, fmt.Errorf("init: layer sizes must be positive, got %d→%d→%d",
			cfg.InputSize, cfg.HiddenSize, cfg.OutputSize)
	}
	if rng == nil {
		rng = NewRand(-1)
	}

	return Params{
		W1: uniform(cfg.HiddenSize, cfg.InputSize, rng),
		B1: uniform(cfg.HiddenSize, 1, rng),
		W2: uniform(cfg.OutputSize, cfg.HiddenSize, rng),
		B2: uniform(cfg.OutputSize, 1, rng),
	}, nil
}

func uniform(rows, cols int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * initBound
	}
	return mat.NewDense(rows, cols, data)
}
