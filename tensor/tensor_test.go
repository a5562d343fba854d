// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/digitnet/nn"
	"github.com/born-ml/digitnet/tensor"
)

func TestShapeErrorFromPublicAPI(t *testing.T) {
	params, err := nn.InitParams(nn.InitConfig{InputSize: 4, HiddenSize: 3, OutputSize: 2}, nn.NewRand(1))
	require.NoError(t, err)

	_, err = nn.Forward(params, mat.NewDense(5, 2, nil))
	require.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	var se *tensor.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, tensor.Shape{5, 2}, se.Got)
	assert.Equal(t, tensor.Shape{2, 3}, tensor.ShapeOf(mat.NewDense(2, 3, nil)))
}
