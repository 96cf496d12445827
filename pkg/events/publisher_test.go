package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "agent_run:run-1", RunChannel("run-1"))
	assert.Equal(t, "agent_run:run-1:control", RunControlChannel("run-1"))
	assert.Equal(t, "runs", GlobalRunsChannel)
}

func TestInjectDBEventIDAndTruncate_SmallPayload(t *testing.T) {
	payload, err := json.Marshal(ResponseItemPayload{
		Type:     EventTypeResponseNew,
		RunID:    "run-1",
		ThreadID: "thread-1",
		Item:     map[string]any{"type": "status"},
	})
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, EventTypeResponseNew, m["type"])
	assert.NotContains(t, m, "truncated")
}

func TestInjectDBEventIDAndTruncate_OversizedPayload(t *testing.T) {
	payload, err := json.Marshal(ResponseItemPayload{
		Type:     EventTypeResponseNew,
		RunID:    "run-1",
		ThreadID: "thread-1",
		Item:     map[string]any{"content": strings.Repeat("x", 9000)},
	})
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 7)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 7900)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "run-1", m["run_id"])
	assert.Equal(t, "thread-1", m["thread_id"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.NotContains(t, m, "item")
}

func TestTruncateIfNeeded_Boundary(t *testing.T) {
	small := `{"type":"run.control","run_id":"r","signal":"STOP"}`
	out, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)
}
