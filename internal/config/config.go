// Package config loads the runtime knobs for a training run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/born-ml/digits/internal/logging"
	"github.com/born-ml/digits/internal/model"
	"gopkg.in/yaml.v3"
)

// Precisions accepted in model.precision.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Data  Data            `yaml:"data"`
	Model Model           `yaml:"model"`
	Train Train           `yaml:"train"`
	Eval  Eval            `yaml:"eval"`
	Log   logging.Options `yaml:"log"`
}

// Data locates the four dataset files. File names are resolved against Dir.
type Data struct {
	Dir         string `yaml:"dir"`
	TrainImages string `yaml:"train_images"`
	TrainLabels string `yaml:"train_labels"`
	TestImages  string `yaml:"test_images"`
	TestLabels  string `yaml:"test_labels"`
}

// Model selects the architecture and its hyperparameters.
type Model struct {
	Kind         string  `yaml:"kind"`
	Hidden1      int     `yaml:"hidden1"`
	Hidden2      int     `yaml:"hidden2"`
	LearningRate float64 `yaml:"learning_rate"`
	Seed         int64   `yaml:"seed"`
	Precision    string  `yaml:"precision"`
}

// Train controls the training loop.
type Train struct {
	LogEvery   int `yaml:"log_every"`
	MaxRecords int `yaml:"max_records"`
}

// Eval controls test-set evaluation.
type Eval struct {
	Workers int `yaml:"workers"`
}

// Overrides captures CLI supplied values. Zero values leave the config
// untouched, except Seed, which applies whenever it is non-nil.
type Overrides struct {
	DataDir      string
	Kind         string
	Hidden1      int
	Hidden2      int
	LearningRate float64
	Seed         *int64
	Precision    string
	LogEvery     int
	MaxRecords   int
	Workers      int
	LogLevel     string
	LogEncoding  string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: Data{
			Dir:         ".",
			TrainImages: "train-images-idx3-ubyte",
			TrainLabels: "train-labels-idx1-ubyte",
			TestImages:  "t10k-images-idx3-ubyte",
			TestLabels:  "t10k-labels-idx1-ubyte",
		},
		Model: Model{
			Kind:         string(model.KindTwoHiddenLayer),
			Hidden1:      model.DefaultHidden1,
			Hidden2:      model.DefaultHidden2,
			LearningRate: model.DefaultLearningRate,
			Seed:         1,
			Precision:    PrecisionFloat32,
		},
		Train: Train{LogEvery: 1000},
		Log:   logging.DefaultOptions(),
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataDir != "" {
		c.Data.Dir = o.DataDir
	}
	if o.Kind != "" {
		c.Model.Kind = o.Kind
	}
	if o.Hidden1 > 0 {
		c.Model.Hidden1 = o.Hidden1
	}
	if o.Hidden2 > 0 {
		c.Model.Hidden2 = o.Hidden2
	}
	if o.LearningRate > 0 {
		c.Model.LearningRate = o.LearningRate
	}
	if o.Seed != nil {
		c.Model.Seed = *o.Seed
	}
	if o.Precision != "" {
		c.Model.Precision = o.Precision
	}
	if o.LogEvery > 0 {
		c.Train.LogEvery = o.LogEvery
	}
	if o.MaxRecords > 0 {
		c.Train.MaxRecords = o.MaxRecords
	}
	if o.Workers > 0 {
		c.Eval.Workers = o.Workers
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogEncoding != "" {
		c.Log.Encoding = o.LogEncoding
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.TrainImages == "" || c.Data.TrainLabels == "" {
		return errors.New("data: train_images and train_labels must be set")
	}
	if c.Data.TestImages == "" || c.Data.TestLabels == "" {
		return errors.New("data: test_images and test_labels must be set")
	}
	if _, err := model.ParseKind(c.Model.Kind); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if c.Model.Hidden1 <= 0 || c.Model.Hidden2 <= 0 {
		return fmt.Errorf("model: hidden sizes must be > 0 (got %d, %d)", c.Model.Hidden1, c.Model.Hidden2)
	}
	if c.Model.LearningRate <= 0 {
		return fmt.Errorf("model: learning_rate must be > 0 (got %g)", c.Model.LearningRate)
	}
	switch c.Model.Precision {
	case PrecisionFloat32, PrecisionFloat64:
	default:
		return fmt.Errorf("model: precision %q: want %q or %q", c.Model.Precision, PrecisionFloat32, PrecisionFloat64)
	}
	if c.Train.MaxRecords < 0 {
		return fmt.Errorf("train: max_records must be >= 0 (got %d)", c.Train.MaxRecords)
	}
	if c.Eval.Workers < 0 {
		return fmt.Errorf("eval: workers must be >= 0 (got %d)", c.Eval.Workers)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Architecture returns the model architecture described by c.
func (c *Config) Architecture() model.Architecture {
	return model.Architecture{
		Kind:    model.Kind(c.Model.Kind),
		Hidden1: c.Model.Hidden1,
		Hidden2: c.Model.Hidden2,
	}
}

// ModelOptions returns the learning rate and seed for model construction.
func (c *Config) ModelOptions() model.Options {
	return model.Options{LearningRate: c.Model.LearningRate, Seed: c.Model.Seed}
}

// TrainPaths returns the resolved training image and label paths.
func (c *Config) TrainPaths() (images, labels string) {
	return c.resolve(c.Data.TrainImages), c.resolve(c.Data.TrainLabels)
}

// TestPaths returns the resolved test image and label paths.
func (c *Config) TestPaths() (images, labels string) {
	return c.resolve(c.Data.TestImages), c.resolve(c.Data.TestLabels)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.Data.Dir == "" {
		return name
	}
	return filepath.Join(c.Data.Dir, name)
}
