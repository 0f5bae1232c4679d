package model

import (
	"math"
	"math/rand"

	"github.com/born-ml/digits/internal/linalg"
)

// HeStd returns sqrt(2/fanIn), the He scale for ReLU layers.
func HeStd(fanIn int) float64 {
	if fanIn <= 0 {
		panic("model: he scale: fan-in must be positive")
	}
	return math.Sqrt(2.0 / float64(fanIn))
}

// heUniform draws a (fanOut x fanIn) matrix from U(-1, 1) * sqrt(2/fanIn).
func heUniform[T linalg.Float](rng *rand.Rand, fanOut, fanIn int) *linalg.Matrix[T] {
	scale := HeStd(fanIn)
	w := linalg.RepeatingMatrix[T](0, fanOut, fanIn)
	for i := 0; i < w.Len(); i++ {
		w.SetIndex(i, T((rng.Float64()*2-1)*scale))
	}
	return w
}

func newRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}
