package model

import (
	"math/rand"
	"testing"

	"github.com/born-ml/digits/internal/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// numericMatrixGradient perturbs every element of w and returns dLoss/dw.
func numericMatrixGradient(w *linalg.Matrix[float64], loss func() float64) []float64 {
	original := w.Values()
	defer func() {
		for i, v := range original {
			w.SetIndex(i, v)
		}
	}()
	f := func(p []float64) float64 {
		for i, v := range p {
			w.SetIndex(i, v)
		}
		return loss()
	}
	return fd.Gradient(nil, f, original, &fd.Settings{Formula: fd.Central})
}

func numericVectorGradient(b *linalg.Vector[float64], loss func() float64) []float64 {
	original := b.Values()
	defer func() {
		for i, v := range original {
			b.Set(i, v)
		}
	}()
	f := func(p []float64) float64 {
		for i, v := range p {
			b.Set(i, v)
		}
		return loss()
	}
	return fd.Gradient(nil, f, original, &fd.Settings{Formula: fd.Central})
}

func TestTwoHiddenLayerGradientsMatchFiniteDifferences(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	m := NewTwoHiddenLayer[float64](6, 5, 4, 3, Options{Seed: 17})

	// Nonzero biases exercise the full affine path.
	for _, b := range []*linalg.Vector[float64]{m.b1, m.b2, m.b3} {
		for i := 0; i < b.Len(); i++ {
			b.Set(i, rng.Float64()*0.2-0.1)
		}
	}

	x := randomInput[float64](rng, 6)
	const class = 1
	target := oneHot[float64](3, class)
	loss := func() float64 { return CrossEntropy(m.Inference(x), class) }

	act := m.forward(x)
	d1, d2, d3 := m.deltas(act, target)

	layers := []struct {
		name  string
		w     *linalg.Matrix[float64]
		b     *linalg.Vector[float64]
		delta *linalg.Vector[float64]
		input *linalg.Vector[float64]
	}{
		{"layer1", m.w1, m.b1, d1, act.x},
		{"layer2", m.w2, m.b2, d2, act.a1},
		{"layer3", m.w3, m.b3, d3, act.a2},
	}

	for _, layer := range layers {
		t.Run(layer.name, func(t *testing.T) {
			analyticW := linalg.OuterProduct(layer.delta, layer.input).Values()
			numericW := numericMatrixGradient(layer.w, loss)
			require.Len(t, numericW, len(analyticW))
			for i := range analyticW {
				assert.InDelta(t, numericW[i], analyticW[i], 1e-3, "weight %d", i)
			}

			analyticB := layer.delta.Values()
			numericB := numericVectorGradient(layer.b, loss)
			for i := range analyticB {
				assert.InDelta(t, numericB[i], analyticB[i], 1e-3, "bias %d", i)
			}
		})
	}
}

func TestTwoHiddenLayerTrainingFitsSample(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := NewTwoHiddenLayer[float32](32, 16, 8, 10, Options{LearningRate: 0.05, Seed: 5})
	x := randomInput[float32](rng, 32)
	target := oneHot[float32](10, 4)

	before := CrossEntropy(m.Inference(x), 4)
	for i := 0; i < 50; i++ {
		m.Train(x, target)
	}
	after := CrossEntropy(m.Inference(x), 4)

	assert.Less(t, after, before)
	assert.Equal(t, 4, Category(m.Inference(x)))
}

func TestTwoHiddenLayerDeltasUsePreUpdateWeights(t *testing.T) {
	m := NewTwoHiddenLayer[float64](3, 4, 4, 2, Options{Seed: 2})
	x := linalg.NewVector(0.3, 0.6, 0.9)
	target := oneHot[float64](2, 0)

	act := m.forward(x)
	_, _, d3 := m.deltas(act, target)
	w3 := m.w3.Clone()
	b3 := m.b3.Clone()

	m.Train(x, target)

	// The output layer moved by exactly one lr-scaled outer product step.
	step := linalg.OuterProduct(d3, act.a2)
	for i := 0; i < w3.Len(); i++ {
		assert.InDelta(t, w3.Index(i)-0.01*step.Index(i), m.w3.Index(i), 1e-12)
	}
	for i := 0; i < b3.Len(); i++ {
		assert.InDelta(t, b3.At(i)-0.01*d3.At(i), m.b3.At(i), 1e-12)
	}
}

func BenchmarkTwoHiddenLayerTrain(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := NewTwoHiddenLayer[float32](784, DefaultHidden1, DefaultHidden2, 10, Options{Seed: 1})
	x := randomInput[float32](rng, 784)
	target := oneHot[float32](10, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Train(x, target)
	}
}
