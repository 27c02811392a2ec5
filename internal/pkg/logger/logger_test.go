package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: "debug", Output: &buf})

	lgr.Info().Str("component", "workflow").Msg("ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ready", entry["message"])
	assert.Equal(t, "workflow", entry["component"])
	assert.NotEmpty(t, entry["time"])
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: "chatty", Output: &buf})

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	lgr.Debug().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	lgr.Info().Msg("shown")
	assert.NotEmpty(t, buf.Bytes())
}

func TestConfigureHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: "error", Output: &buf})

	lgr.Warn().Msg("suppressed")
	assert.Empty(t, buf.Bytes())
}
