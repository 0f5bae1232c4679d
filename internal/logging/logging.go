// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Supported encodings.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Options selects the level and encoding of a logger.
type Options struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// DefaultOptions returns info-level console logging.
func DefaultOptions() Options {
	return Options{Level: "info", Encoding: EncodingConsole}
}

// Validate checks that the level and encoding are known.
func (o Options) Validate() error {
	if _, err := zapcore.ParseLevel(o.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch o.Encoding {
	case EncodingConsole, EncodingJSON:
		return nil
	default:
		return fmt.Errorf("log encoding %q: want %q or %q", o.Encoding, EncodingConsole, EncodingJSON)
	}
}

// NewConfig returns a zap config with ISO8601 timestamps, capital level
// names and no stack traces. Console output colors the level.
func NewConfig(opts Options) (zap.Config, error) {
	if err := opts.Validate(); err != nil {
		return zap.Config{}, err
	}
	level, _ := zapcore.ParseLevel(opts.Level)

	encodeLevel := zapcore.CapitalColorLevelEncoder
	if opts.Encoding == EncodingJSON {
		encodeLevel = zapcore.CapitalLevelEncoder
	}
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: opts.Encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    encodeLevel,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}, nil
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	cfg, err := NewConfig(opts)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// NewObservedTestLogger returns a debug-level logger whose entries are kept
// in memory for assertions.
func NewObservedTestLogger(tb testing.TB) (*zap.Logger, *observer.ObservedLogs) {
	tb.Helper()
	core, logs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	return zap.New(core).Named(tb.Name()), logs
}
