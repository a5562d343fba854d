// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs the full-batch training loop.
//
// # Basic Usage
//
//	import (
//	    "log"
//
//	    "github.com/born-ml/digitnet/loader"
//	    "github.com/born-ml/digitnet/train"
//	)
//
//	func main() {
//	    trainSet, _ := loader.LoadMNIST("data", true, 0)
//	    valSet, _ := loader.LoadMNIST("data", false, 0)
//
//	    cfg := train.DefaultConfig()
//	    params, err := train.Train(trainSet, valSet, cfg, train.NewLogReporter(nil))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Progress is reported at iteration 1 and every cfg.ReportEvery iterations.
package train
