package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/bridge"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/database"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/runner"
	"github.com/agentd-io/agentd/pkg/services"
	"github.com/agentd-io/agentd/pkg/trigger"
	testdb "github.com/agentd-io/agentd/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	router  *gin.Engine
	db      *database.Client
	runs    *services.RunService
	threads *services.ThreadService
	events  *services.EventService
	manager *events.ConnectionManager
	cfg     *config.Config
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	threads := services.NewThreadService(client.Client)
	eventsSvc := services.NewEventService(client.Client)
	workflows := services.NewWorkflowService(client.Client)
	projects := services.NewProjectService(client.Client)

	registry := trigger.NewRegistry()
	registry.Register(trigger.NewWebhookProvider())
	triggerSvc := trigger.NewService(services.NewTriggerService(client.Client), registry)

	manager := events.NewConnectionManager(events.NewEventServiceAdapter(eventsSvc), time.Second)
	publisher := events.NewEventPublisher(client.DB())
	br := bridge.NewBridge(projects, threads, runs, workflows, nil, "gpt-4o", nil)

	cfg := &config.Config{
		Server:  config.DefaultServerConfig(),
		Queue:   config.DefaultQueueConfig(),
		Events:  config.DefaultEventsConfig(),
		LLM:     config.DefaultLLMConfig(),
		Trigger: config.DefaultTriggerConfig(),
		Sandbox: config.DefaultSandboxConfig(),
	}
	cfg.Server.StreamKeepAlive = 100 * time.Millisecond

	pool := runner.NewWorkerPool("api-test-instance", runs, eventsSvc, cfg.Queue, time.Minute, runner.NewStubExecutor(), publisher)

	server := NewServer(Deps{
		Config:    cfg,
		DB:        client,
		Runs:      runs,
		Threads:   threads,
		Events:    eventsSvc,
		Workflows: workflows,
		Triggers:  triggerSvc,
		Bridge:    br,
		Pool:      pool,
		Publisher: publisher,
		Manager:   manager,
	})

	return &apiFixture{
		router:  server.Router(),
		db:      client,
		runs:    runs,
		threads: threads,
		events:  eventsSvc,
		manager: manager,
		cfg:     cfg,
	}
}

func (f *apiFixture) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (f *apiFixture) createThread(t *testing.T) string {
	w := f.request(t, http.MethodPost, "/api/v1/threads", map[string]any{})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["id"].(string)
}

func TestRunLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	threadID := f.createThread(t)

	// Enqueue with the default model.
	w := f.request(t, http.MethodPost, "/api/v1/threads/"+threadID+"/runs", map[string]any{})
	require.Equal(t, http.StatusCreated, w.Code)
	run := decodeBody(t, w)
	runID := run["id"].(string)
	assert.Equal(t, "pending", run["status"])
	assert.Equal(t, f.cfg.LLM.DefaultModel, run["model"])

	// Detail and listing.
	w = f.request(t, http.MethodGet, "/api/v1/runs/"+runID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.request(t, http.MethodGet, "/api/v1/threads/"+threadID+"/runs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["total"])

	// Stop while pending.
	w = f.request(t, http.MethodPost, "/api/v1/runs/"+runID+"/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stopped", decodeBody(t, w)["status"])

	// A second stop conflicts.
	w = f.request(t, http.MethodPost, "/api/v1/runs/"+runID+"/stop", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateRunUnknownThread(t *testing.T) {
	f := newAPIFixture(t)

	w := f.request(t, http.MethodPost, "/api/v1/threads/nope/runs", map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggerWebhookFlow(t *testing.T) {
	f := newAPIFixture(t)

	w := f.request(t, http.MethodPost, "/api/v1/agents/agent-1/triggers", map[string]any{
		"provider_id": trigger.WebhookProviderID,
		"name":        "order hook",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	triggerID := decodeBody(t, w)["id"].(string)

	// Webhook delivery starts an execution.
	w = f.request(t, http.MethodPost, "/api/v1/triggers/"+triggerID+"/webhook", map[string]any{"order_id": "o-42"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, "agent-1", body["agent_id"])
	require.NotEmpty(t, body["execution_id"])

	// The run was enqueued pending.
	w = f.request(t, http.MethodGet, "/api/v1/runs/"+body["execution_id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", decodeBody(t, w)["status"])

	// The delivery was logged.
	w = f.request(t, http.MethodGet, "/api/v1/triggers/"+triggerID+"/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decodeBody(t, w)["logs"].([]any)
	require.Len(t, logs, 1)

	// Deactivated triggers reject deliveries.
	w = f.request(t, http.MethodPatch, "/api/v1/triggers/"+triggerID, map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.request(t, http.MethodPost, "/api/v1/triggers/"+triggerID+"/webhook", map[string]any{})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Delete removes it.
	w = f.request(t, http.MethodDelete, "/api/v1/triggers/"+triggerID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = f.request(t, http.MethodGet, "/api/v1/triggers/"+triggerID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggerUnknownProvider(t *testing.T) {
	f := newAPIFixture(t)

	w := f.request(t, http.MethodPost, "/api/v1/agents/agent-1/triggers", map[string]any{
		"provider_id": "telepathy",
		"name":        "bad",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkflowCRUDOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	w := f.request(t, http.MethodPost, "/api/v1/agents/agent-1/workflows", map[string]any{
		"name": "daily digest",
		"steps": []map[string]any{
			{"name": "fetch data", "tool": "http_get"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	workflowID := decodeBody(t, w)["id"].(string)

	w = f.request(t, http.MethodGet, "/api/v1/agents/agent-1/workflows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["workflows"].([]any), 1)

	w = f.request(t, http.MethodPatch, "/api/v1/workflows/"+workflowID, map[string]any{"name": "weekly digest"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "weekly digest", decodeBody(t, w)["name"])

	w = f.request(t, http.MethodDelete, "/api/v1/workflows/"+workflowID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = f.request(t, http.MethodGet, "/api/v1/workflows/"+workflowID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	w := f.request(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])

	w = f.request(t, http.MethodGet, "/api/v1/queue/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "api-test-instance", body["instance_id"])
	assert.Equal(t, true, body["db_reachable"])
}

// seedStreamEvents appends buffer rows for a run: one assistant item and a
// terminal thread_run_end status.
func seedStreamEvents(t *testing.T, f *apiFixture, run *ent.AgentRun) {
	t.Helper()

	items := []models.ResponseItem{
		{
			ThreadID:     run.ThreadID,
			Type:         models.ItemTypeAssistant,
			Content:      map[string]any{"role": "assistant", "content": "All done."},
			IsLLMMessage: true,
		},
		{
			ThreadID: run.ThreadID,
			Type:     models.ItemTypeStatus,
			Content:  map[string]any{"status_type": models.StatusThreadRunEnd},
		},
	}
	for _, item := range items {
		payload := map[string]any{
			"type":      events.EventTypeResponseNew,
			"run_id":    run.ID,
			"thread_id": run.ThreadID,
			"item":      item.ToMap(),
		}
		_, err := f.events.CreateEvent(context.Background(), models.CreateEventRequest{
			RunID:   run.ID,
			Channel: events.RunChannel(run.ID),
			Payload: payload,
		})
		require.NoError(t, err)
	}
}

func TestStreamReplaysBufferAndEnds(t *testing.T) {
	f := newAPIFixture(t)
	threadID := f.createThread(t)

	run, err := f.runs.CreateRun(context.Background(), models.CreateRunRequest{ThreadID: threadID, Model: "gpt-4o"})
	require.NoError(t, err)
	seedStreamEvents(t, f, run)

	w := f.request(t, http.MethodGet, "/api/v1/runs/"+run.ID+"/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", w.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", w.Header().Get("Connection"))
	assert.Equal(t, "no", w.Header().Get("X-Accel-Buffering"))

	body := w.Body.String()
	assert.Contains(t, body, "data: ")
	assert.Contains(t, body, "All done.")
	assert.Contains(t, body, models.StatusThreadRunEnd)
}

func TestStreamResumesAfterLastEventID(t *testing.T) {
	f := newAPIFixture(t)
	threadID := f.createThread(t)

	run, err := f.runs.CreateRun(context.Background(), models.CreateRunRequest{ThreadID: threadID, Model: "gpt-4o"})
	require.NoError(t, err)
	seedStreamEvents(t, f, run)

	rows, err := f.events.GetRunEvents(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Resuming after the first event only replays the terminal one.
	w := f.request(t, http.MethodGet, "/api/v1/runs/"+run.ID+"/stream?last_event_id="+strconv.Itoa(rows[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "All done.")
	assert.Contains(t, body, models.StatusThreadRunEnd)
}

func TestStreamFinishedRunWithPrunedBuffer(t *testing.T) {
	f := newAPIFixture(t)
	threadID := f.createThread(t)

	run, err := f.runs.CreateRun(context.Background(), models.CreateRunRequest{ThreadID: threadID, Model: "gpt-4o"})
	require.NoError(t, err)
	_, err = f.runs.ClaimNextPending(context.Background(), "api-test-instance")
	require.NoError(t, err)
	_, err = f.runs.FinalizeRun(context.Background(), run.ID, agentrun.StatusCompleted, "", nil)
	require.NoError(t, err)

	// No buffer rows exist, so the handler closes with a synthetic
	// terminal marker instead of an empty stream.
	w := f.request(t, http.MethodGet, "/api/v1/runs/"+run.ID+"/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "data: ")
	assert.Contains(t, body, `"type":"run.status"`)
	assert.Contains(t, body, `"status":"completed"`)
}

func TestStreamUnknownRun(t *testing.T) {
	f := newAPIFixture(t)

	w := f.request(t, http.MethodGet, "/api/v1/runs/nope/stream", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
