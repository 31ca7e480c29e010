package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := InitLogger("debug", &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	l.Info().Str("url", "example.com").Msg("test message")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "example.com", entry["url"])
	assert.Equal(t, "test message", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestInitLogger_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := InitLogger("", &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	_, err := InitLogger("loud", nil)
	assert.Error(t, err)
}
