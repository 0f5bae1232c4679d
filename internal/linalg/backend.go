package linalg

import "fmt"

// kernels is the per-precision primitive set. float32Kernels and
// float64Kernels are structurally identical and differ only in the gonum
// BLAS package and math library they call.
type kernels[T Float] interface {
	// gemv computes y = alpha*op(A)*x + beta*y for a row-major rows×cols A.
	gemv(trans bool, rows, cols int, alpha T, a, x []T, beta T, y []T)
	// gemm computes C = alpha*A*B + beta*C for A (m×k), B (k×n), C (m×n).
	gemm(m, n, k int, alpha T, a, b []T, beta T, c []T)
	// ger computes A += alpha * x * yᵀ for a row-major len(x)×len(y) A.
	ger(alpha T, x, y, a []T)
	// axpy computes y += alpha*x.
	axpy(alpha T, x, y []T)
	dot(x, y []T) T
	nrm2(x []T) T
	scal(alpha T, x []T)
	exp(x T) T
	log(x T) T
}

// kernelsFor returns the primitive set for T.
func kernelsFor[T Float]() kernels[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32Kernels{}).(kernels[T])
	case float64:
		return any(float64Kernels{}).(kernels[T])
	default:
		panic(fmt.Sprintf("linalg: unsupported scalar type %T", zero))
	}
}

// stride returns a valid leading dimension for a row-major matrix; BLAS
// rejects a zero stride even for empty matrices.
func stride(cols int) int {
	return max(cols, 1)
}
