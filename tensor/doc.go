// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the shape descriptors and errors shared by the
// digitnet packages.
//
// Matrices themselves are gonum *mat.Dense values; this package only
// describes and checks their shapes.
//
// # Errors
//
// Shape problems are reported as *ShapeError and label problems as
// *LabelError. Both match their sentinel with errors.Is:
//
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    var se *tensor.ShapeError
//	    errors.As(err, &se)
//	    fmt.Println(se.Op, se.Operand, se.Got, se.Want)
//	}
package tensor
