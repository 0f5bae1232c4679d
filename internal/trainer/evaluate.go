package trainer

import (
	"context"
	"fmt"

	"github.com/born-ml/digits/internal/linalg"
	"github.com/born-ml/digits/internal/model"
	"github.com/born-ml/digits/internal/parallel"
)

// Report summarizes a model on a labelled sample set.
type Report struct {
	Samples  int
	Correct  int
	Accuracy float64
	MeanLoss float64

	// Confusion[actual][predicted] counts samples.
	Confusion [][]int

	// PerClass is the accuracy on samples of each actual class. Classes
	// without samples report 0.
	PerClass []float64
}

type tally struct {
	correct   int
	loss      float64
	confusion [][]int
}

func newTally(classes int) *tally {
	c := make([][]int, classes)
	for i := range c {
		c[i] = make([]int, classes)
	}
	return &tally{confusion: c}
}

// Evaluate runs read-only inference over samples using cfg's workers.
//
// m must not be trained concurrently; pass a published model.
func Evaluate[T linalg.Float](ctx context.Context, m model.Model[T], samples []Sample, cfg parallel.Config) (Report, error) {
	classes := m.OutputSize()
	for i, s := range samples {
		if s.Digit < 0 || s.Digit >= classes {
			return Report{}, fmt.Errorf("sample %d: %w: %d", i, ErrLabelOutOfRange, s.Digit)
		}
		if len(s.Image) != m.InputSize() {
			return Report{}, fmt.Errorf("sample %d: image has %d pixels, model expects %d", i, len(s.Image), m.InputSize())
		}
	}

	tallies := make([]*tally, cfg.Chunks(len(samples)))
	parallel.For(len(samples), cfg, func(chunk, lo, hi int) {
		t := newTally(classes)
		tallies[chunk] = t
		for _, s := range samples[lo:hi] {
			if ctx.Err() != nil {
				return
			}
			y := m.Inference(Normalize[T](s.Image))
			predicted := model.Category(y)
			if predicted == s.Digit {
				t.correct++
			}
			t.loss += float64(model.CrossEntropy(y, s.Digit))
			t.confusion[s.Digit][predicted]++
		}
	})
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	total := newTally(classes)
	for _, t := range tallies {
		total.correct += t.correct
		total.loss += t.loss
		for a := range t.confusion {
			for p, n := range t.confusion[a] {
				total.confusion[a][p] += n
			}
		}
	}

	r := Report{
		Samples:   len(samples),
		Correct:   total.correct,
		Confusion: total.confusion,
		PerClass:  make([]float64, classes),
	}
	if r.Samples > 0 {
		r.Accuracy = float64(r.Correct) / float64(r.Samples)
		r.MeanLoss = total.loss / float64(r.Samples)
	}
	for c, row := range r.Confusion {
		n := 0
		for _, v := range row {
			n += v
		}
		if n > 0 {
			r.PerClass[c] = float64(row[c]) / float64(n)
		}
	}
	return r, nil
}
