// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the two trainable digit classifiers: single-layer
// softmax regression and a two-hidden-layer ReLU perceptron.
//
// Example:
//
//	m := model.NewTwoHiddenLayer[float32](784, 512, 256, 10, model.Options{Seed: 1})
//	m.Train(x, target)           // one SGD step
//	y := m.Inference(x)          // class probabilities
//	digit := model.Category(y)
package model

import (
	"github.com/born-ml/digits/internal/model"
	"github.com/born-ml/digits/linalg"
)

// Model is the train/infer contract shared by both variants.
type Model[T linalg.Float] = model.Model[T]

// SingleLayer is softmax regression.
type SingleLayer[T linalg.Float] = model.SingleLayer[T]

// TwoHiddenLayer is a ReLU MLP with two hidden layers.
type TwoHiddenLayer[T linalg.Float] = model.TwoHiddenLayer[T]

// Options controls learning rate and initialization seed.
type Options = model.Options

// Kind names a model variant.
type Kind = model.Kind

// Architecture selects a variant and its hidden widths.
type Architecture = model.Architecture

// Model variants.
const (
	KindSingleLayer    = model.KindSingleLayer
	KindTwoHiddenLayer = model.KindTwoHiddenLayer
)

// Defaults.
const (
	DefaultLearningRate = model.DefaultLearningRate
	DefaultHidden1      = model.DefaultHidden1
	DefaultHidden2      = model.DefaultHidden2
)

// NewSingleLayer creates a softmax regression model.
func NewSingleLayer[T linalg.Float](inputs, outputs int, opts Options) *SingleLayer[T] {
	return model.NewSingleLayer[T](inputs, outputs, opts)
}

// NewTwoHiddenLayer creates a two-hidden-layer MLP.
func NewTwoHiddenLayer[T linalg.Float](inputs, hidden1, hidden2, outputs int, opts Options) *TwoHiddenLayer[T] {
	return model.NewTwoHiddenLayer[T](inputs, hidden1, hidden2, outputs, opts)
}

// New builds the model described by arch.
func New[T linalg.Float](arch Architecture, inputs, outputs int, opts Options) (Model[T], error) {
	return model.New[T](arch, inputs, outputs, opts)
}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) { return model.ParseKind(s) }

// Category returns the index of the largest probability.
func Category[T linalg.Float](probabilities *linalg.Vector[T]) int {
	return model.Category(probabilities)
}

// CrossEntropy returns -log(probabilities[class]).
func CrossEntropy[T linalg.Float](probabilities *linalg.Vector[T], class int) T {
	return model.CrossEntropy(probabilities, class)
}

// HeStd returns sqrt(2/fanIn).
func HeStd(fanIn int) float64 { return model.HeStd(fanIn) }
