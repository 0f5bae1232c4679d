package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/digits/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "digits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "two-hidden-layer", cfg.Model.Kind)
	assert.Equal(t, 512, cfg.Model.Hidden1)
	assert.Equal(t, 256, cfg.Model.Hidden2)
	assert.Equal(t, 0.01, cfg.Model.LearningRate)
	assert.Equal(t, PrecisionFloat32, cfg.Model.Precision)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
data:
  dir: /data/mnist
  train_images: train-images-idx3-ubyte.gz
model:
  kind: single-layer
  learning_rate: 0.05
  seed: 42
  precision: float64
train:
  log_every: 500
  max_records: 10000
eval:
  workers: 2
log:
  level: debug
  encoding: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "single-layer", cfg.Model.Kind)
	assert.Equal(t, 0.05, cfg.Model.LearningRate)
	assert.Equal(t, int64(42), cfg.Model.Seed)
	assert.Equal(t, 512, cfg.Model.Hidden1, "unset fields keep defaults")
	assert.Equal(t, 500, cfg.Train.LogEvery)
	assert.Equal(t, 10000, cfg.Train.MaxRecords)
	assert.Equal(t, 2, cfg.Eval.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)

	images, labels := cfg.TrainPaths()
	assert.Equal(t, filepath.Join("/data/mnist", "train-images-idx3-ubyte.gz"), images)
	assert.Equal(t, filepath.Join("/data/mnist", "train-labels-idx1-ubyte"), labels)

	assert.Equal(t, model.Architecture{Kind: model.KindSingleLayer, Hidden1: 512, Hidden2: 256}, cfg.Architecture())
	assert.Equal(t, model.Options{LearningRate: 0.05, Seed: 42}, cfg.ModelOptions())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "model: [unclosed"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "model:\n  kind: transformer\n"))
	assert.ErrorContains(t, err, "model")
}

func TestApplyOverrides(t *testing.T) {
	seed := int64(9)
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		DataDir:      "/tmp/d",
		Kind:         "single-layer",
		Hidden1:      64,
		LearningRate: 0.1,
		Seed:         &seed,
		Precision:    "float64",
		MaxRecords:   100,
		LogLevel:     "warn",
	})

	assert.Equal(t, "/tmp/d", cfg.Data.Dir)
	assert.Equal(t, "single-layer", cfg.Model.Kind)
	assert.Equal(t, 64, cfg.Model.Hidden1)
	assert.Equal(t, 256, cfg.Model.Hidden2, "zero overrides are ignored")
	assert.Equal(t, 0.1, cfg.Model.LearningRate)
	assert.Equal(t, int64(9), cfg.Model.Seed)
	assert.Equal(t, "float64", cfg.Model.Precision)
	assert.Equal(t, 100, cfg.Train.MaxRecords)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing train images", func(c *Config) { c.Data.TrainImages = "" }},
		{"missing test labels", func(c *Config) { c.Data.TestLabels = "" }},
		{"unknown kind", func(c *Config) { c.Model.Kind = "cnn" }},
		{"zero hidden", func(c *Config) { c.Model.Hidden2 = 0 }},
		{"negative learning rate", func(c *Config) { c.Model.LearningRate = -1 }},
		{"bad precision", func(c *Config) { c.Model.Precision = "float16" }},
		{"negative max records", func(c *Config) { c.Train.MaxRecords = -1 }},
		{"negative workers", func(c *Config) { c.Eval.Workers = -2 }},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())

	cfg := Default()
	cfg.Train.LogEvery = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Train.LogEvery, "Validate leaves the config unchanged")
}

func TestApplyOverridesZeroSeed(t *testing.T) {
	zero := int64(0)
	cfg := Default()
	require.Equal(t, int64(1), cfg.Model.Seed)

	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, int64(1), cfg.Model.Seed, "nil seed is ignored")

	cfg.ApplyOverrides(Overrides{Seed: &zero})
	assert.Equal(t, int64(0), cfg.Model.Seed)
}

func TestPathsKeepAbsoluteNames(t *testing.T) {
	cfg := Default()
	cfg.Data.Dir = "/data"
	cfg.Data.TestImages = "/elsewhere/t10k-images-idx3-ubyte"

	images, labels := cfg.TestPaths()
	assert.Equal(t, "/elsewhere/t10k-images-idx3-ubyte", images)
	assert.Equal(t, filepath.Join("/data", "t10k-labels-idx1-ubyte"), labels)
}
