// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/born-ml/digits/linalg"
	"github.com/born-ml/digits/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModelInterface verifies that both variants implement Model.
func TestModelInterface(t *testing.T) {
	tests := []struct {
		name  string
		model model.Model[float32]
	}{
		{"SingleLayer", model.NewSingleLayer[float32](8, 3, model.Options{})},
		{"TwoHiddenLayer", model.NewTwoHiddenLayer[float32](8, 6, 4, 3, model.Options{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := linalg.RepeatingVector[float32](0.5, 8)
			y := tt.model.Inference(x)
			require.Equal(t, 3, y.Len())

			target := linalg.Zeros[float32](3)
			target.Set(1, 1)
			before := model.CrossEntropy(y, 1)
			tt.model.Train(x, target)
			assert.Less(t, model.CrossEntropy(tt.model.Inference(x), 1), before)
		})
	}
}
