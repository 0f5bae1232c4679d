package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Options{Level: "warn", Encoding: EncodingJSON})
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
	assert.Equal(t, "json", cfg.Encoding)
	assert.True(t, cfg.DisableStacktrace)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"default", DefaultOptions(), false},
		{"debug json", Options{Level: "debug", Encoding: "json"}, false},
		{"bad level", Options{Level: "loud", Encoding: "console"}, true},
		{"bad encoding", Options{Level: "info", Encoding: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(DefaultOptions())
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New(Options{Level: "info", Encoding: "yaml"})
	assert.Error(t, err)
}

func TestNewObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debug("hello", zap.Int("n", 3))

	entries := logs.FilterMessage("hello").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["n"])
}
