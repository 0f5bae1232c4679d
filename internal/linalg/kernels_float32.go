package linalg

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

type float32Kernels struct{}

func vec32(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Data: x, Inc: 1}
}

func general32(rows, cols int, data []float32) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: stride(cols), Data: data}
}

func (float32Kernels) gemv(trans bool, rows, cols int, alpha float32, a, x []float32, beta float32, y []float32) {
	t := blas.NoTrans
	if trans {
		t = blas.Trans
	}
	blas32.Gemv(t, alpha, general32(rows, cols, a), vec32(x), beta, vec32(y))
}

func (float32Kernels) gemm(m, n, k int, alpha float32, a, b []float32, beta float32, c []float32) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, alpha, general32(m, k, a), general32(k, n, b), beta, general32(m, n, c))
}

func (float32Kernels) ger(alpha float32, x, y, a []float32) {
	blas32.Ger(alpha, vec32(x), vec32(y), general32(len(x), len(y), a))
}

func (float32Kernels) axpy(alpha float32, x, y []float32) {
	blas32.Axpy(alpha, vec32(x), vec32(y))
}

func (float32Kernels) dot(x, y []float32) float32 {
	return blas32.Dot(vec32(x), vec32(y))
}

func (float32Kernels) nrm2(x []float32) float32 {
	return blas32.Nrm2(vec32(x))
}

func (float32Kernels) scal(alpha float32, x []float32) {
	blas32.Scal(alpha, vec32(x))
}

func (float32Kernels) exp(x float32) float32 { return math32.Exp(x) }

func (float32Kernels) log(x float32) float32 { return math32.Log(x) }
