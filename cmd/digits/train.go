package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/digits/internal/config"
	"github.com/born-ml/digits/internal/idx"
	"github.com/born-ml/digits/internal/linalg"
	"github.com/born-ml/digits/internal/logging"
	"github.com/born-ml/digits/internal/parallel"
	"github.com/born-ml/digits/internal/trainer"
)

// loadConfig reads --config (or the defaults) and applies command line
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	var seed *int64
	if c.IsSet(flagSeed) {
		s := c.Int64(flagSeed)
		seed = &s
	}
	cfg.ApplyOverrides(config.Overrides{
		DataDir:      c.String(flagData),
		Kind:         c.String(flagModel),
		Hidden1:      c.Int(flagHidden1),
		Hidden2:      c.Int(flagHidden2),
		LearningRate: c.Float64(flagLR),
		Seed:         seed,
		Precision:    c.String(flagPrecision),
		LogEvery:     c.Int(flagLogEvery),
		MaxRecords:   c.Int(flagMaxRecords),
		Workers:      c.Int(flagWorkers),
		LogLevel:     c.String(flagLogLevel),
		LogEncoding:  c.String(flagLogEncoding),
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func trainAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Sync on stderr returns EINVAL on some platforms.
	defer logger.Sync()

	logger.Info("host", cpuFields()...)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Model.Precision == config.PrecisionFloat64 {
		return run[float64](ctx, cfg, logger, c.App.Writer)
	}
	return run[float32](ctx, cfg, logger, c.App.Writer)
}

// run trains in a background goroutine, publishes the finished model and
// evaluates the published snapshot on the test split.
func run[T linalg.Float](ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	trainImages, trainLabels := cfg.TrainPaths()
	seq, err := idx.Open(trainImages, trainLabels)
	if err != nil {
		return fmt.Errorf("training set: %w", err)
	}
	defer seq.Close()

	var registry trainer.Registry[T]
	progress := make(chan trainer.Progress, 64)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(progress)
		res, err := trainer.Train(gctx, seq, trainer.NewFactory[T](cfg.Architecture(), cfg.ModelOptions()), trainer.Options{
			Progress:   progress,
			Logger:     logger,
			LogEvery:   cfg.Train.LogEvery,
			MaxRecords: cfg.Train.MaxRecords,
		})
		if err != nil {
			return err
		}
		registry.Publish(res)
		return nil
	})
	g.Go(func() error {
		watchProgress(progress, logger)
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "training cancelled: no model")
			return nil
		}
		return err
	}

	published := registry.Current()
	logger.Info("model published", zap.String("run", published.Run), zap.Int("records", published.Records))

	testImages, testLabels := cfg.TestPaths()
	testSeq, err := idx.Open(testImages, testLabels)
	if err != nil {
		return fmt.Errorf("test set: %w", err)
	}
	defer testSeq.Close()

	samples, err := trainer.LoadSamples(ctx, testSeq, nil)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "evaluation cancelled: no result")
		return nil
	}
	if err != nil {
		return err
	}

	report, err := trainer.Evaluate(ctx, published.Model, samples, parallel.WithWorkers(cfg.Eval.Workers))
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "evaluation cancelled: no result")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderSummary(published.Run, string(published.Model.Kind()), published.Records, report))
	fmt.Fprintln(out, renderConfusion(report))
	return nil
}

// watchProgress logs each completed tenth of the run at debug level.
func watchProgress(progress <-chan trainer.Progress, logger *zap.Logger) {
	decile := 0
	for p := range progress {
		if d := int(p.Ratio() * 10); d > decile {
			decile = d
			logger.Debug("progress", zap.Int("completed", p.Completed), zap.Int("total", p.Total), zap.Float64("ratio", p.Ratio()))
		}
	}
}
