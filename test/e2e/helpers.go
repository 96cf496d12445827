package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent/agentrun"
)

// postJSON sends a POST with a JSON body and decodes the JSON response into out.
func (app *TestApp) postJSON(t *testing.T, path string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(app.BaseURL+path, "application/json", &buf)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// getJSON sends a GET and decodes the JSON response into out.
func (app *TestApp) getJSON(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := http.Get(app.BaseURL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// CreateThread creates a thread over the API and returns its ID.
func (app *TestApp) CreateThread(t *testing.T) string {
	t.Helper()

	var thread struct {
		ID string `json:"id"`
	}
	status := app.postJSON(t, "/api/v1/threads", map[string]any{}, &thread)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, thread.ID)
	return thread.ID
}

// CreateRun enqueues a run on the thread over the API and returns its ID.
func (app *TestApp) CreateRun(t *testing.T, threadID string, body map[string]any) string {
	t.Helper()

	if body == nil {
		body = map[string]any{}
	}
	var run struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	status := app.postJSON(t, "/api/v1/threads/"+threadID+"/runs", body, &run)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, string(agentrun.StatusPending), run.Status)
	return run.ID
}

// WaitForRunStatus polls the run detail endpoint until the run reaches the
// wanted status.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID string, want agentrun.Status, timeout time.Duration) map[string]any {
	t.Helper()

	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		status := app.getJSON(t, "/api/v1/runs/"+runID, &last)
		require.Equal(t, http.StatusOK, status)
		if last["status"] == string(want) {
			return last
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("run %s never reached status %s (last: %v)", runID, want, last["status"])
	return nil
}

// SSEFrame is one decoded data frame from the run stream.
type SSEFrame struct {
	Raw    string
	Parsed map[string]any
}

// ReadStream consumes the run's SSE stream until the server ends it or the
// timeout elapses, returning all decoded data frames.
func (app *TestApp) ReadStream(t *testing.T, runID, query string, timeout time.Duration) []SSEFrame {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/v1/runs/%s/stream%s", app.BaseURL, runID, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var frames []SSEFrame
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue // keep-alive comments and blank separators
		}
		raw := strings.TrimPrefix(line, "data: ")
		frame := SSEFrame{Raw: raw}
		_ = json.Unmarshal([]byte(raw), &frame.Parsed)
		frames = append(frames, frame)
	}
	return frames
}

// assistantText concatenates the content of completed assistant messages,
// decoding the string-encoded envelopes used on the stream. Chunk frames are
// skipped so the text is not double-counted.
func assistantText(t *testing.T, frames []SSEFrame) string {
	t.Helper()

	var sb strings.Builder
	for _, f := range frames {
		if f.Parsed["type"] != "assistant" {
			continue
		}
		metaEncoded, _ := f.Parsed["metadata"].(string)
		var meta map[string]any
		if metaEncoded != "" {
			require.NoError(t, json.Unmarshal([]byte(metaEncoded), &meta))
		}
		if meta["stream_status"] != "complete" {
			continue
		}
		encoded, _ := f.Parsed["content"].(string)
		if encoded == "" {
			continue
		}
		var content map[string]any
		require.NoError(t, json.Unmarshal([]byte(encoded), &content))
		if text, ok := content["content"].(string); ok {
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// statusTypes extracts the status_type sequence from status frames.
func statusTypes(t *testing.T, frames []SSEFrame) []string {
	t.Helper()

	var out []string
	for _, f := range frames {
		if f.Parsed["type"] != "status" {
			continue
		}
		encoded, _ := f.Parsed["content"].(string)
		var content map[string]any
		require.NoError(t, json.Unmarshal([]byte(encoded), &content))
		if st, ok := content["status_type"].(string); ok {
			out = append(out, st)
		}
	}
	return out
}
