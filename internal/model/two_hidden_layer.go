package model

import "github.com/born-ml/digits/internal/linalg"

// TwoHiddenLayer is a ReLU multilayer perceptron with two hidden layers and a
// softmax output:
//
//	z1 = W1·x + b1,  a1 = relu(z1)
//	z2 = W2·a1 + b2, a2 = relu(z2)
//	z3 = W3·a2 + b3, y  = softmax(z3)
type TwoHiddenLayer[T linalg.Float] struct {
	w1, w2, w3 *linalg.Matrix[T]
	b1, b2, b3 *linalg.Vector[T]
	lr         T
}

// NewTwoHiddenLayer creates an MLP sized (inputs, hidden1, hidden2, outputs)
// with He-scaled uniform weights and zero biases.
func NewTwoHiddenLayer[T linalg.Float](inputs, hidden1, hidden2, outputs int, opts Options) *TwoHiddenLayer[T] {
	if inputs <= 0 || hidden1 <= 0 || hidden2 <= 0 || outputs <= 0 {
		panic("model: two hidden layer: sizes must be positive")
	}
	rng := newRand(opts.Seed)
	return &TwoHiddenLayer[T]{
		w1: heUniform[T](rng, hidden1, inputs),
		w2: heUniform[T](rng, hidden2, hidden1),
		w3: heUniform[T](rng, outputs, hidden2),
		b1: linalg.Zeros[T](hidden1),
		b2: linalg.Zeros[T](hidden2),
		b3: linalg.Zeros[T](outputs),
		lr: T(opts.learningRate()),
	}
}

// activations holds every intermediate of one forward pass.
type activations[T linalg.Float] struct {
	x, z1, a1, z2, a2, y *linalg.Vector[T]
}

func (m *TwoHiddenLayer[T]) forward(x *linalg.Vector[T]) activations[T] {
	z1 := linalg.Affine(m.w1, x, m.b1)
	a1 := linalg.ReLU(z1)
	z2 := linalg.Affine(m.w2, a1, m.b2)
	a2 := linalg.ReLU(z2)
	y := linalg.Softmax(linalg.Affine(m.w3, a2, m.b3))
	return activations[T]{x: x, z1: z1, a1: a1, z2: z2, a2: a2, y: y}
}

// deltas returns the per-layer error terms δ1, δ2, δ3 computed against the
// current (pre-update) weights.
func (m *TwoHiddenLayer[T]) deltas(act activations[T], target *linalg.Vector[T]) (d1, d2, d3 *linalg.Vector[T]) {
	d3 = linalg.Sub(act.y, target)

	d2 = linalg.TransposeMultiply(m.w3, d3)
	linalg.Hadamard(d2, linalg.ReLUPrime(act.z2))

	d1 = linalg.TransposeMultiply(m.w2, d2)
	linalg.Hadamard(d1, linalg.ReLUPrime(act.z1))
	return d1, d2, d3
}

// Train applies one SGD step to all three layers.
func (m *TwoHiddenLayer[T]) Train(input, target *linalg.Vector[T]) {
	checkInput("two hidden layer train", m.InputSize(), input.Len())
	checkTarget("two hidden layer train", m.OutputSize(), target.Len())

	act := m.forward(input)
	d1, d2, d3 := m.deltas(act, target)

	descend(m.w3, m.b3, d3, act.a2, m.lr)
	descend(m.w2, m.b2, d2, act.a1, m.lr)
	descend(m.w1, m.b1, d1, act.x, m.lr)
}

// Inference returns the class probabilities for input.
func (m *TwoHiddenLayer[T]) Inference(input *linalg.Vector[T]) *linalg.Vector[T] {
	checkInput("two hidden layer inference", m.InputSize(), input.Len())
	return m.forward(input).y
}

// InputSize returns the expected input length.
func (m *TwoHiddenLayer[T]) InputSize() int { return m.w1.Cols() }

// OutputSize returns the number of classes.
func (m *TwoHiddenLayer[T]) OutputSize() int { return m.w3.Rows() }

// HiddenSizes returns the widths of the two hidden layers.
func (m *TwoHiddenLayer[T]) HiddenSizes() (int, int) { return m.w1.Rows(), m.w2.Rows() }

// Kind returns KindTwoHiddenLayer.
func (m *TwoHiddenLayer[T]) Kind() Kind { return KindTwoHiddenLayer }

func (m *TwoHiddenLayer[T]) sealed() {}
