// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/digits/internal/linalg"
)

// Float is the constraint for supported element types.
type Float = linalg.Float

// Vector is a fixed-length owning buffer.
type Vector[T Float] = linalg.Vector[T]

// Matrix is a row-major owning buffer.
type Matrix[T Float] = linalg.Matrix[T]

// Construction

// NewVector creates a vector holding a copy of elements.
func NewVector[T Float](elements ...T) *Vector[T] { return linalg.NewVector(elements...) }

// RepeatingVector creates a vector of count copies of value.
func RepeatingVector[T Float](value T, count int) *Vector[T] {
	return linalg.RepeatingVector(value, count)
}

// Zeros creates a zero vector of the given length.
func Zeros[T Float](count int) *Vector[T] { return linalg.Zeros[T](count) }

// NewMatrix creates a matrix from rectangular nested rows.
func NewMatrix[T Float](rows [][]T) *Matrix[T] { return linalg.NewMatrix(rows) }

// NewMatrixFromElements creates a rows x cols matrix from a row-major buffer.
func NewMatrixFromElements[T Float](elements []T, rows, cols int) *Matrix[T] {
	return linalg.NewMatrixFromElements(elements, rows, cols)
}

// RepeatingMatrix creates a rows x cols matrix filled with value.
func RepeatingMatrix[T Float](value T, rows, cols int) *Matrix[T] {
	return linalg.RepeatingMatrix(value, rows, cols)
}

// Products

// Affine returns w·x + b in one fused pass.
func Affine[T Float](w *Matrix[T], x, b *Vector[T]) *Vector[T] { return linalg.Affine(w, x, b) }

// MulVec returns w·x.
func MulVec[T Float](w *Matrix[T], x *Vector[T]) *Vector[T] { return linalg.MulVec(w, x) }

// VecMul returns x·w.
func VecMul[T Float](x *Vector[T], w *Matrix[T]) *Vector[T] { return linalg.VecMul(x, w) }

// MatMul returns a·b.
func MatMul[T Float](a, b *Matrix[T]) *Matrix[T] { return linalg.MatMul(a, b) }

// TransposeMultiply returns wᵗ·u without transposing w.
func TransposeMultiply[T Float](w *Matrix[T], u *Vector[T]) *Vector[T] {
	return linalg.TransposeMultiply(w, u)
}

// OuterProduct returns the matrix M[i][j] = a[i] * b[j].
func OuterProduct[T Float](a, b *Vector[T]) *Matrix[T] { return linalg.OuterProduct(a, b) }

// Dot returns the inner product of a and b.
func Dot[T Float](a, b *Vector[T]) T { return linalg.Dot(a, b) }

// Element-wise

// Hadamard computes a[i] *= b[i] in place.
func Hadamard[T Float](a, b *Vector[T]) { linalg.Hadamard(a, b) }

// Add returns a + b.
func Add[T Float](a, b *Vector[T]) *Vector[T] { return linalg.Add(a, b) }

// Sub returns a - b.
func Sub[T Float](a, b *Vector[T]) *Vector[T] { return linalg.Sub(a, b) }

// Scale returns a * scalar.
func Scale[T Float](a *Vector[T], scalar T) *Vector[T] { return linalg.Scale(a, scalar) }

// ScaleAndAdd returns a * scalar + c.
func ScaleAndAdd[T Float](a *Vector[T], scalar T, c *Vector[T]) *Vector[T] {
	return linalg.ScaleAndAdd(a, scalar, c)
}

// ScaleAndAddInPlace computes target[i] += scalar * a[i].
func ScaleAndAddInPlace[T Float](a *Vector[T], scalar T, target *Vector[T]) {
	linalg.ScaleAndAddInPlace(a, scalar, target)
}

// ScaleAndAddRowInPlace computes target[row, i] += scalar * a[i].
func ScaleAndAddRowInPlace[T Float](a *Vector[T], scalar T, target *Matrix[T], row int) {
	linalg.ScaleAndAddRowInPlace(a, scalar, target, row)
}

// Reductions and norms

// Norm returns the Euclidean norm of v.
func Norm[T Float](v *Vector[T]) T { return linalg.Norm(v) }

// UnitVector returns v scaled to unit length. A zero vector is unchanged.
func UnitVector[T Float](v *Vector[T]) *Vector[T] { return linalg.UnitVector(v) }

// Max returns the largest element.
func Max[T Float](v *Vector[T]) T { return linalg.Max(v) }

// ArgMax returns the largest element and its first index.
func ArgMax[T Float](v *Vector[T]) (T, int) { return linalg.ArgMax(v) }

// Sum returns the sum of all elements.
func Sum[T Float](v *Vector[T]) T { return linalg.Sum(v) }

// Activations

// Softmax returns the shift-stabilized softmax of z.
func Softmax[T Float](z *Vector[T]) *Vector[T] { return linalg.Softmax(z) }

// ReLU returns max(0, z[i]).
func ReLU[T Float](z *Vector[T]) *Vector[T] { return linalg.ReLU(z) }

// ReLUPrime returns 1 where z[i] > 0, else 0.
func ReLUPrime[T Float](z *Vector[T]) *Vector[T] { return linalg.ReLUPrime(z) }
