package linalg

import "fmt"

// Affine computes y = W·x + b in a single fused gemv pass: y starts as a copy
// of b and W·x is accumulated into it.
//
// W has shape (out, in), x has length in, b has length out.
func Affine[T Float](w *Matrix[T], x, b *Vector[T]) *Vector[T] {
	if w.cols != x.Len() || w.rows != b.Len() {
		panic(fmt.Sprintf("linalg: affine: shape mismatch W[%d,%d]·x[%d] + b[%d]", w.rows, w.cols, x.Len(), b.Len()))
	}
	y := b.Clone()
	if w.rows == 0 || w.cols == 0 {
		return y
	}
	kernelsFor[T]().gemv(false, w.rows, w.cols, 1, w.data, x.data, 1, y.data)
	return y
}

// MulVec computes W·x.
func MulVec[T Float](w *Matrix[T], x *Vector[T]) *Vector[T] {
	if w.cols != x.Len() {
		panic(fmt.Sprintf("linalg: mulvec: shape mismatch W[%d,%d]·x[%d]", w.rows, w.cols, x.Len()))
	}
	y := Zeros[T](w.rows)
	if w.rows == 0 || w.cols == 0 {
		return y
	}
	kernelsFor[T]().gemv(false, w.rows, w.cols, 1, w.data, x.data, 0, y.data)
	return y
}

// VecMul computes the row-vector product x·W, where x has length W.Rows().
func VecMul[T Float](x *Vector[T], w *Matrix[T]) *Vector[T] {
	if x.Len() != w.rows {
		panic(fmt.Sprintf("linalg: vecmul: shape mismatch x[%d]·W[%d,%d]", x.Len(), w.rows, w.cols))
	}
	y := Zeros[T](w.cols)
	if w.rows == 0 || w.cols == 0 {
		return y
	}
	kernelsFor[T]().gemv(true, w.rows, w.cols, 1, w.data, x.data, 0, y.data)
	return y
}

// MatMul computes A·B for A (m×k) and B (k×n).
func MatMul[T Float](a, b *Matrix[T]) *Matrix[T] {
	if a.cols != b.rows {
		panic(fmt.Sprintf("linalg: matmul: shape mismatch [%d,%d] @ [%d,%d]", a.rows, a.cols, b.rows, b.cols))
	}
	c := RepeatingMatrix[T](0, a.rows, b.cols)
	if a.rows == 0 || b.cols == 0 || a.cols == 0 {
		return c
	}
	kernelsFor[T]().gemm(a.rows, b.cols, a.cols, 1, a.data, b.data, 0, c.data)
	return c
}

// TransposeMultiply computes v = Wᵀ·u without materializing Wᵀ by
// accumulating v += u[j] * row_j(W) for every row j.
//
// W has shape (out, in), u has length out, v has length in.
func TransposeMultiply[T Float](w *Matrix[T], u *Vector[T]) *Vector[T] {
	if u.Len() != w.rows {
		panic(fmt.Sprintf("linalg: transpose multiply: shape mismatch W[%d,%d]ᵀ·u[%d]", w.rows, w.cols, u.Len()))
	}
	k := kernelsFor[T]()
	v := Zeros[T](w.cols)
	for j := 0; j < w.rows; j++ {
		k.axpy(u.data[j], w.row(j), v.data)
	}
	return v
}

// OuterProduct computes M[i][j] = a[i] * b[j].
func OuterProduct[T Float](a, b *Vector[T]) *Matrix[T] {
	m := RepeatingMatrix[T](0, a.Len(), b.Len())
	if a.Len() == 0 || b.Len() == 0 {
		return m
	}
	kernelsFor[T]().ger(1, a.data, b.data, m.data)
	return m
}

// Hadamard multiplies a by b element-wise in place: a[i] *= b[i].
func Hadamard[T Float](a, b *Vector[T]) {
	mustSameLen("hadamard", a.Len(), b.Len())
	for i := range a.data {
		a.data[i] *= b.data[i]
	}
}

// Add returns a + b.
func Add[T Float](a, b *Vector[T]) *Vector[T] {
	mustSameLen("add", a.Len(), b.Len())
	out := a.Clone()
	kernelsFor[T]().axpy(1, b.data, out.data)
	return out
}

// Sub returns a - b.
func Sub[T Float](a, b *Vector[T]) *Vector[T] {
	mustSameLen("sub", a.Len(), b.Len())
	out := a.Clone()
	kernelsFor[T]().axpy(-1, b.data, out.data)
	return out
}

// Scale returns a * scalar.
func Scale[T Float](a *Vector[T], scalar T) *Vector[T] {
	out := a.Clone()
	kernelsFor[T]().scal(scalar, out.data)
	return out
}

// ScaleAndAdd returns a*scalar + c as a new vector.
func ScaleAndAdd[T Float](a *Vector[T], scalar T, c *Vector[T]) *Vector[T] {
	mustSameLen("scale and add", a.Len(), c.Len())
	out := c.Clone()
	kernelsFor[T]().axpy(scalar, a.data, out.data)
	return out
}

// ScaleAndAddInPlace computes target[i] += scalar * a[i].
//
// This is the primitive every weight and bias update goes through.
func ScaleAndAddInPlace[T Float](a *Vector[T], scalar T, target *Vector[T]) {
	mustSameLen("scale and add in place", a.Len(), target.Len())
	if scalar == 0 {
		return
	}
	kernelsFor[T]().axpy(scalar, a.data, target.data)
}

// ScaleAndAddRowInPlace computes target[row, i] += scalar * a[i] for one row
// of a matrix.
func ScaleAndAddRowInPlace[T Float](a *Vector[T], scalar T, target *Matrix[T], row int) {
	mustSameLen("scale and add row", a.Len(), target.cols)
	if row < 0 || row >= target.rows {
		panic(fmt.Sprintf("linalg: scale and add row: row %d out of range [0, %d)", row, target.rows))
	}
	if scalar == 0 {
		return
	}
	kernelsFor[T]().axpy(scalar, a.data, target.row(row))
}

// Dot returns the inner product of a and b.
func Dot[T Float](a, b *Vector[T]) T {
	mustSameLen("dot", a.Len(), b.Len())
	return kernelsFor[T]().dot(a.data, b.data)
}

// Norm returns the Euclidean norm ||v||₂.
func Norm[T Float](v *Vector[T]) T {
	return kernelsFor[T]().nrm2(v.data)
}

// UnitVector returns v / ||v||₂. A zero vector is returned unchanged.
func UnitVector[T Float](v *Vector[T]) *Vector[T] {
	out := v.Clone()
	norm := Norm(v)
	if norm > 0 {
		kernelsFor[T]().scal(1/norm, out.data)
	}
	return out
}

// Max returns the largest element. Panics on an empty vector.
func Max[T Float](v *Vector[T]) T {
	value, _ := ArgMax(v)
	return value
}

// ArgMax returns the largest element and the index of its first occurrence.
// Panics on an empty vector.
func ArgMax[T Float](v *Vector[T]) (T, int) {
	if v.Len() == 0 {
		panic("linalg: argmax of empty vector")
	}
	best, index := v.data[0], 0
	for i, x := range v.data[1:] {
		if x > best {
			best, index = x, i+1
		}
	}
	return best, index
}

// Sum returns the sum of all elements.
func Sum[T Float](v *Vector[T]) T {
	var total T
	for _, x := range v.data {
		total += x
	}
	return total
}
