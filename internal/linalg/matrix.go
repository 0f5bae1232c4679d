package linalg

import (
	"fmt"
	"strings"
)

// Matrix is a 2-D buffer stored row-major in one contiguous slice.
// Element (row, col) lives at index row*cols + col, and
// rows*cols == len(data) always holds.
type Matrix[T Float] struct {
	rows int
	cols int
	data []T
}

// NewMatrix creates a matrix from nested rows.
// Panics if the rows do not all have the same number of columns.
//
// Example:
//
//	m := linalg.NewMatrix([][]float32{
//	    {1, 2},
//	    {3, 4},
//	})
func NewMatrix[T Float](rows [][]T) *Matrix[T] {
	if len(rows) == 0 {
		return &Matrix[T]{}
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("linalg: all rows must have the same number of columns (row %d has %d, want %d)", i, len(row), cols))
		}
		data = append(data, row...)
	}
	return &Matrix[T]{rows: len(rows), cols: cols, data: data}
}

// NewMatrixFromElements creates a rows×cols matrix from a flat row-major slice.
// The slice is copied.
func NewMatrixFromElements[T Float](elements []T, rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 || rows*cols != len(elements) {
		panic(fmt.Sprintf("linalg: %d elements cannot form a %dx%d matrix", len(elements), rows, cols))
	}
	data := make([]T, len(elements))
	copy(data, elements)
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// RepeatingMatrix creates a rows×cols matrix filled with value.
func RepeatingMatrix[T Float](value T, rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("linalg: invalid matrix shape %dx%d", rows, cols))
	}
	data := make([]T, rows*cols)
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return NewMatrixFromElements(m.data, m.rows, m.cols)
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Len returns rows*cols.
func (m *Matrix[T]) Len() int { return len(m.data) }

// At returns element (row, col).
func (m *Matrix[T]) At(row, col int) T {
	return m.data[row*m.cols+col]
}

// Set assigns element (row, col).
func (m *Matrix[T]) Set(row, col int, value T) {
	m.data[row*m.cols+col] = value
}

// Index returns the element at flat row-major index i.
func (m *Matrix[T]) Index(i int) T {
	return m.data[i]
}

// SetIndex assigns the element at flat row-major index i.
func (m *Matrix[T]) SetIndex(i int, value T) {
	m.data[i] = value
}

// Values returns a copy of the row-major elements.
func (m *Matrix[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// Row returns a copy of row i as a vector.
func (m *Matrix[T]) Row(i int) *Vector[T] {
	return NewVector(m.row(i)...)
}

// row returns the backing slice of row i. Callers must not retain it.
func (m *Matrix[T]) row(i int) []T {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders one row per line:
//
//	Matrix[float32]([
//	    [1, 2],
//	    [3, 4]
//	])
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix[")
	sb.WriteString(typeName[T]())
	sb.WriteString("]([\n")
	for r := 0; r < m.rows; r++ {
		sb.WriteString("    [")
		writeElements(&sb, m.row(r))
		if r < m.rows-1 {
			sb.WriteString("],\n")
		} else {
			sb.WriteString("]\n")
		}
	}
	sb.WriteString("])")
	return sb.String()
}
