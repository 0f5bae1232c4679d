package linalg

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

type float64Kernels struct{}

func vec64(x []float64) blas64.Vector {
	return blas64.Vector{N: len(x), Data: x, Inc: 1}
}

func general64(rows, cols int, data []float64) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: stride(cols), Data: data}
}

func (float64Kernels) gemv(trans bool, rows, cols int, alpha float64, a, x []float64, beta float64, y []float64) {
	t := blas.NoTrans
	if trans {
		t = blas.Trans
	}
	blas64.Gemv(t, alpha, general64(rows, cols, a), vec64(x), beta, vec64(y))
}

func (float64Kernels) gemm(m, n, k int, alpha float64, a, b []float64, beta float64, c []float64) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha, general64(m, k, a), general64(k, n, b), beta, general64(m, n, c))
}

func (float64Kernels) ger(alpha float64, x, y, a []float64) {
	blas64.Ger(alpha, vec64(x), vec64(y), general64(len(x), len(y), a))
}

func (float64Kernels) axpy(alpha float64, x, y []float64) {
	blas64.Axpy(alpha, vec64(x), vec64(y))
}

func (float64Kernels) dot(x, y []float64) float64 {
	return blas64.Dot(vec64(x), vec64(y))
}

func (float64Kernels) nrm2(x []float64) float64 {
	return blas64.Nrm2(vec64(x))
}

func (float64Kernels) scal(alpha float64, x []float64) {
	blas64.Scal(alpha, vec64(x))
}

func (float64Kernels) exp(x float64) float64 { return math.Exp(x) }

func (float64Kernels) log(x float64) float64 { return math.Log(x) }
