package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl, "test")
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.NotNil(t, Log)
			assert.IsType(t, &zap.SugaredLogger{}, Log)

			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level", "test")
	assert.Error(t, err)
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
		Sync()
	})
}

func TestNewConfig_ServiceAndVersionFields(t *testing.T) {
	cfg, err := newConfig("warn", "v1.2.3")
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
	assert.Equal(t, map[string]any{"service": "cats-api", "version": "v1.2.3"}, cfg.InitialFields)

	out := filepath.Join(t.TempDir(), "log.json")
	cfg.OutputPaths = []string{out}
	l, err := cfg.Build()
	require.NoError(t, err)

	l.Sugar().Infow("dropped below warn")
	l.Sugar().Warnw("cat deleted", "cat_id", "42")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "cats-api", entry["service"])
	assert.Equal(t, "v1.2.3", entry["version"])
	assert.Equal(t, "cat deleted", entry["msg"])
	assert.Equal(t, "42", entry["cat_id"])
	assert.Contains(t, entry, "time")
}

func TestNewConfig_InvalidLevel(t *testing.T) {
	_, err := newConfig("loud", "dev")
	assert.Error(t, err)
}
