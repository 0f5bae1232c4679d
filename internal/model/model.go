// Package model implements the two trainable digit classifiers.
//
// Both variants share one contract: Train performs exactly one stochastic
// gradient step for one sample and mutates the parameters; Inference returns
// a class-probability vector and has no observable side effect.
//
// A model is owned by a single writer. Concurrent Inference calls are safe
// only while no Train call is in flight on the same instance, which is why the
// training loop publishes a finished model instead of sharing one under
// construction.
package model

import (
	"fmt"

	"github.com/born-ml/digits/internal/linalg"
)

// DefaultLearningRate is the step size used when Options.LearningRate is zero.
const DefaultLearningRate = 0.01

// Kind names a model variant.
type Kind string

// Supported model variants.
const (
	KindSingleLayer    Kind = "single-layer"
	KindTwoHiddenLayer Kind = "two-hidden-layer"
)

// Default hidden layer widths of the two-hidden-layer variant.
const (
	DefaultHidden1 = 512
	DefaultHidden2 = 256
)

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSingleLayer, KindTwoHiddenLayer:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown model kind %q (want %q or %q)", s, KindSingleLayer, KindTwoHiddenLayer)
	}
}

// Model is the train/infer contract shared by both variants.
//
// The interface is sealed: *SingleLayer and *TwoHiddenLayer are the only
// implementations.
type Model[T linalg.Float] interface {
	// Train applies one gradient step for (input, target).
	// Panics if input.Len() != InputSize() or target.Len() != OutputSize().
	Train(input, target *linalg.Vector[T])

	// Inference returns the class probabilities for input.
	// Panics if input.Len() != InputSize().
	Inference(input *linalg.Vector[T]) *linalg.Vector[T]

	InputSize() int
	OutputSize() int
	Kind() Kind

	sealed()
}

// Options controls learning rate and the initialization stream.
type Options struct {
	// LearningRate is the SGD step size. Zero selects DefaultLearningRate.
	LearningRate float64

	// Seed feeds the weight initializer. Equal seeds give equal weights.
	Seed int64
}

func (o Options) learningRate() float64 {
	if o.LearningRate == 0 {
		return DefaultLearningRate
	}
	return o.LearningRate
}

// Category returns the predicted class: the index of the largest probability.
func Category[T linalg.Float](probabilities *linalg.Vector[T]) int {
	_, index := linalg.ArgMax(probabilities)
	return index
}

// CrossEntropy returns -log(probabilities[class]).
func CrossEntropy[T linalg.Float](probabilities *linalg.Vector[T], class int) T {
	if class < 0 || class >= probabilities.Len() {
		panic(fmt.Sprintf("model: cross entropy: class %d out of range [0, %d)", class, probabilities.Len()))
	}
	return -linalg.Log(probabilities.At(class))
}

func checkInput(op string, want, got int) {
	if want != got {
		panic(fmt.Sprintf("model: %s: input length %d, model expects %d", op, got, want))
	}
}

func checkTarget(op string, want, got int) {
	if want != got {
		panic(fmt.Sprintf("model: %s: target length %d, model expects %d", op, got, want))
	}
}

// descend applies W[j,:] -= lr * delta[j] * input and b -= lr * delta.
func descend[T linalg.Float](w *linalg.Matrix[T], b, delta, input *linalg.Vector[T], lr T) {
	for j := 0; j < delta.Len(); j++ {
		linalg.ScaleAndAddRowInPlace(input, -lr*delta.At(j), w, j)
	}
	linalg.ScaleAndAddInPlace(delta, -lr, b)
}

// Architecture selects a variant and, for the MLP, its hidden widths.
// Zero hidden widths select DefaultHidden1 and DefaultHidden2.
type Architecture struct {
	Kind    Kind
	Hidden1 int
	Hidden2 int
}

// New builds the model described by arch.
func New[T linalg.Float](arch Architecture, inputs, outputs int, opts Options) (Model[T], error) {
	switch arch.Kind {
	case KindSingleLayer:
		return NewSingleLayer[T](inputs, outputs, opts), nil
	case KindTwoHiddenLayer:
		h1, h2 := arch.Hidden1, arch.Hidden2
		if h1 == 0 {
			h1 = DefaultHidden1
		}
		if h2 == 0 {
			h2 = DefaultHidden2
		}
		return NewTwoHiddenLayer[T](inputs, h1, h2, outputs, opts), nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", arch.Kind)
	}
}
