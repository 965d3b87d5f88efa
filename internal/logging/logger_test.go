package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(&buf, "debug", "json")

	logger.Debug("batch analyzed", "reviews", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "batch analyzed", entry["msg"])
	assert.Equal(t, float64(3), entry["reviews"])
	assert.Same(t, logger, Logger)
}

func TestInitLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(&buf, "warn", "text")

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
