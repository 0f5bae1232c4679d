// Package linalg provides owning vector and matrix buffers and the BLAS-backed
// kernels the digit models are built from.
//
// Every buffer owns its storage exclusively. Mutation through Set is in place;
// copies are always explicit (Clone, or kernels that return a new buffer).
//
// Shape mismatches are programmer errors: kernels panic before touching any
// element rather than truncating or padding.
package linalg

import "fmt"

// Float is the constraint for supported scalar types.
//
// Only the exact types are accepted (no ~) because the kernels dispatch to
// gonum's blas32 and blas64 packages by concrete slice type.
type Float interface {
	float32 | float64
}

// typeName returns "float32" or "float64" for rendering.
func typeName[T Float]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// bitSize returns the precision passed to strconv when rendering elements.
func bitSize[T Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

func mustSameLen(op string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("linalg: %s: length mismatch %d vs %d", op, a, b))
	}
}
