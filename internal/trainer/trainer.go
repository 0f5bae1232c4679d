// Package trainer runs the decode-train loop over an IDX stream and evaluates
// finished models.
//
// Train owns the model it builds until the loop completes; the caller only
// ever sees a fully trained model. Cancelling the context between records
// discards the partially trained model.
package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/born-ml/digits/internal/linalg"
	"github.com/born-ml/digits/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLogEvery is the logging interval used when Options.LogEvery is zero.
const DefaultLogEvery = 1000

// Factory builds an untrained model for the given input and output sizes.
type Factory[T linalg.Float] func(inputs, outputs int) (model.Model[T], error)

// Options tunes a training run. The zero value is usable.
type Options struct {
	// Progress receives best-effort progress events. Sends never block.
	Progress chan<- Progress

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// LogEvery is the number of records between throughput log lines.
	LogEvery int

	// MaxRecords stops after this many records. Zero means all.
	MaxRecords int
}

// Result is a finished training run.
type Result[T linalg.Float] struct {
	Model    model.Model[T]
	Run      string
	Records  int
	Duration time.Duration
}

// Train streams src once, applying one gradient step per record in file
// order, and returns the trained model.
//
// The context is checked before every record. On cancellation Train returns
// ctx.Err() and no model.
func Train[T linalg.Float](ctx context.Context, src Source, newModel Factory[T], opts Options) (*Result[T], error) {
	if err := checkSource(src); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logEvery := opts.LogEvery
	if logEvery <= 0 {
		logEvery = DefaultLogEvery
	}
	total := src.Len()
	if opts.MaxRecords > 0 {
		total = min(total, opts.MaxRecords)
	}

	inputs := src.ImageHeader().CountPerItem
	m, err := newModel(inputs, Classes)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	if m.InputSize() != inputs || m.OutputSize() != Classes {
		return nil, fmt.Errorf("build model: got %d->%d, dataset needs %d->%d",
			m.InputSize(), m.OutputSize(), inputs, Classes)
	}

	run := uuid.NewString()
	logger = logger.With(zap.String("run", run))
	logger.Info("training started",
		zap.String("model", string(m.Kind())),
		zap.Int("records", total),
		zap.Int("inputs", inputs),
	)

	var window Window
	started := time.Now()
	completed := 0
	for completed < total {
		if err := ctx.Err(); err != nil {
			logger.Warn("training cancelled", zap.Int("completed", completed), zap.Error(err))
			return nil, err
		}

		dataStart := time.Now()
		if !src.Next() {
			break
		}
		rec := src.Record()
		d, err := digit(rec, completed, Classes)
		if err != nil {
			return nil, err
		}
		x := Normalize[T](rec.Image)
		target := OneHot[T](d, Classes)
		dataTime := time.Since(dataStart)

		computeStart := time.Now()
		m.Train(x, target)
		window.Record(1, dataTime, time.Since(computeStart))

		completed++
		report(opts.Progress, Progress{Completed: completed, Total: total, Label: d})

		if completed%logEvery == 0 {
			window.SetLoss(float64(model.CrossEntropy(m.Inference(x), d)))
			snap := window.Snapshot()
			logger.Info("training progress",
				zap.Int("completed", completed),
				zap.Int("total", total),
				zap.Float64("records_per_sec", snap.RecordsPerSec),
				zap.Float64("data_ms", snap.AvgDataMS),
				zap.Float64("compute_ms", snap.AvgComputeMS),
				zap.Float64("loss", snap.LastLoss),
			)
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("decode training set: %w", err)
	}

	elapsed := time.Since(started)
	logger.Info("training finished", zap.Int("records", completed), zap.Duration("elapsed", elapsed))
	return &Result[T]{Model: m, Run: run, Records: completed, Duration: elapsed}, nil
}

// NewFactory returns a Factory that builds arch with opts.
func NewFactory[T linalg.Float](arch model.Architecture, opts model.Options) Factory[T] {
	return func(inputs, outputs int) (model.Model[T], error) {
		return model.New[T](arch, inputs, outputs, opts)
	}
}
