package linalg

import (
	"iter"
	"strconv"
	"strings"
)

// Vector is a fixed-length 1-D buffer. Its length never changes after
// construction.
type Vector[T Float] struct {
	data []T
}

// NewVector creates a vector holding a copy of elements.
//
// Example:
//
//	v := linalg.NewVector[float32](1, 2, 3)
func NewVector[T Float](elements ...T) *Vector[T] {
	data := make([]T, len(elements))
	copy(data, elements)
	return &Vector[T]{data: data}
}

// RepeatingVector creates a vector of count copies of value.
func RepeatingVector[T Float](value T, count int) *Vector[T] {
	if count < 0 {
		panic("linalg: negative vector length")
	}
	data := make([]T, count)
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	return &Vector[T]{data: data}
}

// Zeros creates a zero-filled vector of the given length.
func Zeros[T Float](count int) *Vector[T] {
	return RepeatingVector[T](0, count)
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return NewVector(v.data...)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	return v.data[i]
}

// Set assigns the element at index i.
func (v *Vector[T]) Set(i int, value T) {
	v.data[i] = value
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// All iterates over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Equal reports whether both vectors have the same length and elements.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the vector as Vector[float32]([1, 2.5]).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Vector[")
	sb.WriteString(typeName[T]())
	sb.WriteString("]([")
	writeElements(&sb, v.data)
	sb.WriteString("])")
	return sb.String()
}

func writeElements[T Float](sb *strings.Builder, data []T) {
	bits := bitSize[T]()
	for i, x := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, bits))
	}
}
