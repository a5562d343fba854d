// Package main provides the digitnet CLI: train the two-layer classifier on
// MNIST, test a saved model on a single image and on the whole test set.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "train":
		err = runTrain(args, os.Stdout)
	case "test":
		err = runTest(args, os.Stdout)
	case "version":
		fmt.Printf("digitnet %s\n", version)
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		log.Fatalf("unknown command %q", cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if errors.Is(err, errMissingData) {
		fmt.Fprint(os.Stderr, missingDataHelp)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "digitnet - two-layer MNIST digit classifier")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  train      Train a model and save its parameters")
	fmt.Fprintln(w, "  test       Classify one test image and report test-set accuracy")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'digitnet <command> -h' for command flags.")
}

// errMissingData marks a dataset that could not be found on disk.
var errMissingData = errors.New("MNIST data files not found")

const missingDataHelp = `
Error: MNIST data files not found!

To download MNIST dataset:
  1. Create a 'data' directory: mkdir data
  2. Download files from: http://yann.lecun.com/exdb/mnist/
     - train-images-idx3-ubyte.gz
     - train-labels-idx1-ubyte.gz
     - t10k-images-idx3-ubyte.gz
     - t10k-labels-idx1-ubyte.gz
  3. Place them (gzipped or extracted) into the data directory

Or run with -synthetic to use generated patterns:
  digitnet train -synthetic
`
