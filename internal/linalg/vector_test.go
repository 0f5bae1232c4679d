package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorConstruction(t *testing.T) {
	v := NewVector[float32](1, 2, 3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []float32{1, 2, 3}, v.Values())

	filled := RepeatingVector[float64](0.5, 4)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, filled.Values())

	assert.Equal(t, 0, Zeros[float32](0).Len())
}

func TestVectorOwnsStorage(t *testing.T) {
	src := []float32{1, 2}
	v := NewVector(src...)
	src[0] = 99
	assert.Equal(t, float32(1), v.At(0), "constructor must copy its input")

	clone := v.Clone()
	clone.Set(1, 7)
	assert.Equal(t, float32(2), v.At(1), "clone must be deep")

	values := v.Values()
	values[0] = 42
	assert.Equal(t, float32(1), v.At(0), "Values must return a copy")
}

func TestVectorSubscript(t *testing.T) {
	v := NewVector[float32](1, 2)
	assert.Equal(t, float32(1), v.At(0))
	assert.Equal(t, float32(2), v.At(1))

	v.Set(1, 3)
	assert.True(t, v.Equal(NewVector[float32](1, 3)))
}

func TestVectorEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Vector[float32]
		equal bool
	}{
		{"same", NewVector[float32](1, 2), NewVector[float32](1, 2), true},
		{"different element", NewVector[float32](1, 2), NewVector[float32](1, 3), false},
		{"different length", NewVector[float32](1, 2), NewVector[float32](1, 2, 3), false},
		{"empty", NewVector[float32](), NewVector[float32](), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestVectorAll(t *testing.T) {
	v := NewVector[float64](4, 5, 6)
	var got []float64
	for i, x := range v.All() {
		assert.Equal(t, v.At(i), x)
		got = append(got, x)
	}
	assert.Equal(t, []float64{4, 5, 6}, got)

	count := 0
	for range v.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "Vector[float32]([1, 2])", NewVector[float32](1, 2).String())
	assert.Equal(t, "Vector[float64]([0.5, -3])", NewVector[float64](0.5, -3).String())
	assert.Equal(t, "Vector[float32]([0.1])", NewVector[float32](0.1).String())
	assert.Equal(t, "Vector[float32]([])", NewVector[float32]().String())
}

func TestRepeatingVectorNegativeLength(t *testing.T) {
	require.Panics(t, func() { RepeatingVector[float32](1, -1) })
}
