package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/born-ml/digitnet/internal/imageio"
	"github.com/born-ml/digitnet/internal/nn"
	"github.com/born-ml/digitnet/internal/serialization"
)

func runTest(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dataDir := fs.String("data", "./data", "Directory containing MNIST data files")
	modelPath := fs.String("model", "models/model.bin", "Saved parameters to load")
	checksum := fs.String("sha256", "", "Expected SHA-256 of the model file (hex, optional)")
	index := fs.Int("index", 113, "Index of the test image to classify")
	imagePath := fs.String("pgm", "image.pgm", "Where to export the selected image (.pgm or .png, empty = skip)")
	seed := fs.Int64("seed", -1, "Random seed for synthetic data (-1 = random)")
	useSynthetic := fs.Bool("synthetic", false, "Use synthetic data (for testing without MNIST files)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	testSet, err := loadSplit(*dataDir, false, *useSynthetic, 0, 200, *seed)
	if err != nil {
		return fmt.Errorf("failed to load test set: %w", err)
	}
	if *index < 0 || *index >= testSet.Len() {
		return fmt.Errorf("index %d out of range [0, %d)", *index, testSet.Len())
	}

	image := testSet.Column(*index)
	fmt.Fprintf(stdout, "Label for image %d\n", testSet.Labels[*index])

	if *imagePath != "" {
		side := int(math.Sqrt(float64(len(image))))
		if side*side != len(image) {
			return fmt.Errorf("cannot export %d-pixel image: not square", len(image))
		}
		if err := imageio.Save(*imagePath, image, side, side); err != nil {
			return err
		}
	}

	if *checksum != "" {
		want, err := parseChecksum(*checksum)
		if err != nil {
			return err
		}
		if err := serialization.VerifyFile(*modelPath, want); err != nil {
			return err
		}
	}
	params, err := serialization.LoadFile(*modelPath)
	if err != nil {
		return fmt.Errorf("failed to load parameters: %w", err)
	}

	scores, err := nn.RunImage(params, image)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Result:")
	for digit, score := range scores {
		fmt.Fprintf(stdout, "Confidence score for %d: %.6f\n", digit, score)
	}
	fmt.Fprintf(stdout, "\nPredicted Number: %d\n", nn.ArgMax(scores))

	accuracy, err := nn.Evaluate(params, testSet.Images, testSet.Labels)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Test accuracy: %.4f (%d samples)\n", accuracy, testSet.Len())
	return nil
}

func parseChecksum(s string) ([32]byte, error) {
	var sum [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(sum) {
		return sum, fmt.Errorf("invalid sha256 %q", s)
	}
	copy(sum[:], raw)
	return sum, nil
}
