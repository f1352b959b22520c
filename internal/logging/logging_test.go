package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", false)
	l.Debug().Str("algorithm", "bfs").Int("expanded", 7).Msg("search")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "debug", event["level"])
	assert.Equal(t, "bfs", event["algorithm"])
	assert.EqualValues(t, 7, event["expanded"])
	assert.Equal(t, "search", event["message"])
	assert.Contains(t, event, "time")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", false)
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud", false)
	l.Debug().Msg("dropped")
	l.Info().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", true)
	l.Info().Str("algorithm", "dfs").Msg("search")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "algorithm=dfs")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNewLogger_UsesConfigLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	l := NewLogger(cfg)
	assert.Equal(t, "error", l.GetLevel().String())
}
