package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/born-ml/digitnet/internal/serialization"
	"github.com/born-ml/digitnet/internal/train"
)

func runTrain(args []string, stdout io.Writer) error {
	defaults := train.DefaultConfig()

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dataDir := fs.String("data", "./data", "Directory containing MNIST data files")
	maxSamples := fs.Int("samples", 0, "Max training samples to load (0 = all)")
	maxValSamples := fs.Int("val-samples", 0, "Max validation samples to load (0 = all)")
	lr := fs.Float64("lr", defaults.LearningRate, "Learning rate")
	iterations := fs.Int("iterations", defaults.Iterations, "Number of full-batch iterations")
	hidden := fs.Int("hidden", defaults.Init.HiddenSize, "Hidden layer size")
	reportEvery := fs.Int("report", defaults.ReportEvery, "Report accuracy every N iterations")
	seed := fs.Int64("seed", defaults.Seed, "Random seed (-1 = random)")
	out := fs.String("out", "models/model.bin", "Where to save the trained parameters")
	useSynthetic := fs.Bool("synthetic", false, "Use synthetic data (for testing without MNIST files)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(stdout, "", log.LstdFlags)

	trainSet, err := loadSplit(*dataDir, true, *useSynthetic, *maxSamples, 1000, *seed)
	if err != nil {
		return fmt.Errorf("failed to load training set: %w", err)
	}
	// The t10k split doubles as the validation set.
	valSet, err := loadSplit(*dataDir, false, *useSynthetic, *maxValSamples, 200, *seed)
	if err != nil {
		return fmt.Errorf("failed to load validation set: %w", err)
	}
	logger.Printf("Train: %d samples, Val: %d samples, %d features", trainSet.Len(), valSet.Len(), trainSet.Features())

	cfg := defaults
	cfg.LearningRate = *lr
	cfg.Iterations = *iterations
	cfg.ReportEvery = *reportEvery
	cfg.Seed = *seed
	cfg.Init.InputSize = trainSet.Features()
	cfg.Init.HiddenSize = *hidden

	history := &train.HistoryReporter{}
	reporter := train.MultiReporter{train.NewLogReporter(logger), history}

	params, err := train.Train(trainSet, valSet, cfg, reporter)
	if err != nil {
		return err
	}
	if last, ok := history.Last(); ok {
		logger.Printf("Finished %d iterations in %v, validation accuracy %.4f",
			cfg.Iterations, last.Elapsed.Round(time.Millisecond), last.ValidationAccuracy)
	}

	if err := serialization.SaveFile(*out, params); err != nil {
		return fmt.Errorf("failed to save parameters: %w", err)
	}
	sum, err := serialization.FileChecksum(*out)
	if err != nil {
		return err
	}
	logger.Printf("Saved %s (%d parameters) to %s, sha256 %s",
		params, params.NumParameters(), *out, hex.EncodeToString(sum[:]))
	return nil
}
