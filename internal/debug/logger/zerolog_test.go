package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Table", "round started", map[string]interface{}{"wins": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Table", entry["component"])
	assert.Equal(t, "round started", entry["message"])
	assert.Equal(t, float64(2), entry["wins"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("Controller", errors.New("draw from empty deck"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "draw from empty deck", entry["error"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Table", "tick", nil)
	log.Info("Table", "round started", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Table", "slow frame", nil)
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, ok = ParseLevel("warning")
	assert.True(t, ok)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, zerolog.InfoLevel, level)
}
