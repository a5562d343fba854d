package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/digitnet/internal/serialization"
)

func TestTrainThenTestSynthetic(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "models", "model.bin")
	image := filepath.Join(dir, "image.pgm")

	var trainOut bytes.Buffer
	err := runTrain([]string{
		"-synthetic", "-samples", "60", "-val-samples", "20",
		"-iterations", "12", "-seed", "7", "-out", model,
	}, &trainOut)
	require.NoError(t, err)

	log := trainOut.String()
	assert.Contains(t, log, "Iteration: 1, Loss: ")
	assert.Contains(t, log, "Iteration: 10, Loss: ")
	assert.NotContains(t, log, "Iteration: 2,")

	sum, err := serialization.FileChecksum(model)
	require.NoError(t, err)
	assert.Contains(t, log, hex.EncodeToString(sum[:]))

	var testOut bytes.Buffer
	err = runTest([]string{
		"-synthetic", "-seed", "7", "-index", "3", "-model", model,
		"-pgm", image, "-sha256", hex.EncodeToString(sum[:]),
	}, &testOut)
	require.NoError(t, err)

	out := testOut.String()
	assert.Contains(t, out, "Label for image 3\n")
	assert.Equal(t, 10, strings.Count(out, "Confidence score for "))
	assert.Contains(t, out, "Predicted Number: ")
	assert.Contains(t, out, "Test accuracy: ")

	pgm, err := os.ReadFile(image)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pgm), "P2\n28 28\n255\n"))
}

func TestRunTest_Errors(t *testing.T) {
	dir := t.TempDir()

	err := runTest([]string{"-synthetic", "-index", "500", "-model", filepath.Join(dir, "m.bin")}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "out of range")

	err = runTest([]string{"-synthetic", "-pgm", "", "-model", filepath.Join(dir, "m.bin")}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to load parameters")

	err = runTest([]string{"-synthetic", "-pgm", "", "-sha256", "zz"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid sha256")
}

func TestRunTrain_MissingData(t *testing.T) {
	err := runTrain([]string{"-data", t.TempDir()}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errMissingData)
}
