package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("bogus"))
}

func TestNewWithWriterJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")
	log.Debug("hidden")
	log.Info("loaded", zap.Int("rows", 3))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(3), entry["rows"])
}

func TestNewWithWriterConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "console")
	log.Debug("step", zap.String("stage", "load"))

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "step")
	assert.Contains(t, buf.String(), `"stage": "load"`)
}
