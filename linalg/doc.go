// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the vector and matrix buffers and kernels the digit
// classifiers are built from.
//
// # Overview
//
// Vector and Matrix own their storage exclusively. Matrices are row-major.
// Kernels dispatch to gonum's blas32 or blas64 depending on the element type,
// so float32 and float64 follow the same code path.
//
// # Basic Usage
//
//	w := linalg.NewMatrix([][]float32{
//	    {1, 2},
//	    {3, 4},
//	})
//	x := linalg.NewVector[float32](5, 6)
//	b := linalg.NewVector[float32](7, 8)
//
//	y := linalg.Softmax(linalg.Affine(w, x, b))
//
// # Preconditions
//
// Shape mismatches panic before any element is written. They signal a
// programming error, never bad input data.
package linalg
