package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConsoleLoggerWritesPlainLevels(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Options{Level: "debug", Output: &buf, NoColor: true})
	require.NoError(t, err)

	logger.Debug("pass started", zap.String("pass", "p-1"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "pass started")
	assert.Contains(t, out, `"pass": "p-1"`)
}

func TestNewJSONLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Options{Level: "warn", Format: FormatJSON, Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("claim failed", zap.String("account", "chillguy"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "claim failed", entry["msg"])
	assert.Equal(t, "chillguy", entry["account"])
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.ErrorContains(t, err, "parse log level")

	_, err = New(Options{Format: "xml"})
	assert.ErrorContains(t, err, "unsupported log format")
}
