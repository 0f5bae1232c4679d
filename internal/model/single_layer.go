package model

import "github.com/born-ml/digits/internal/linalg"

// SingleLayer is softmax regression: y = softmax(W·x + b).
//
// W has shape (outputs, inputs) and b has length outputs.
type SingleLayer[T linalg.Float] struct {
	w  *linalg.Matrix[T]
	b  *linalg.Vector[T]
	lr T
}

// NewSingleLayer creates a softmax regression model with He-scaled uniform
// weights and zero biases.
func NewSingleLayer[T linalg.Float](inputs, outputs int, opts Options) *SingleLayer[T] {
	if inputs <= 0 || outputs <= 0 {
		panic("model: single layer: sizes must be positive")
	}
	rng := newRand(opts.Seed)
	return &SingleLayer[T]{
		w:  heUniform[T](rng, outputs, inputs),
		b:  linalg.Zeros[T](outputs),
		lr: T(opts.learningRate()),
	}
}

// Train applies one SGD step. For softmax with cross-entropy the output
// gradient collapses to δ = y - t.
func (m *SingleLayer[T]) Train(input, target *linalg.Vector[T]) {
	checkTarget("single layer train", m.OutputSize(), target.Len())
	y := m.Inference(input)
	delta := linalg.Sub(y, target)
	descend(m.w, m.b, delta, input, m.lr)
}

// Inference returns softmax(W·x + b).
func (m *SingleLayer[T]) Inference(input *linalg.Vector[T]) *linalg.Vector[T] {
	checkInput("single layer inference", m.InputSize(), input.Len())
	return linalg.Softmax(linalg.Affine(m.w, input, m.b))
}

// InputSize returns the expected input length.
func (m *SingleLayer[T]) InputSize() int { return m.w.Cols() }

// OutputSize returns the number of classes.
func (m *SingleLayer[T]) OutputSize() int { return m.w.Rows() }

// Kind returns KindSingleLayer.
func (m *SingleLayer[T]) Kind() Kind { return KindSingleLayer }

func (m *SingleLayer[T]) sealed() {}
