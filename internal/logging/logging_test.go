package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("UTC+7", 7*60*60)

	logger := New(&buf, loc)
	logger.Info().Str("component", "test").Msg("server_started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "server_started", entry["message"])
	assert.Equal(t, "test", entry["component"])

	ts, ok := entry[TimestampField].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	_, offset := parsed.Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestNew_NilLocation(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, nil)
	logger.Warn().Msg("fallback")

	assert.Contains(t, buf.String(), `"ts":"`)
	assert.Contains(t, buf.String(), "Z\"")
}
