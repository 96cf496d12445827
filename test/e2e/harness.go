// Package e2e boots complete agentd instances against real PostgreSQL and
// exercises them over their public surfaces: the REST API, the SSE stream,
// and the dashboard WebSocket.
package e2e

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/api"
	"github.com/agentd-io/agentd/pkg/bridge"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/database"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/runner"
	"github.com/agentd-io/agentd/pkg/sandbox"
	"github.com/agentd-io/agentd/pkg/services"
	"github.com/agentd-io/agentd/pkg/tools"
	"github.com/agentd-io/agentd/pkg/trigger"
	testdb "github.com/agentd-io/agentd/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestApp boots a complete agentd instance for e2e testing.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test wiring
	LLMClient *ScriptedLLMClient

	// Real infrastructure
	Runs           *services.RunService
	Threads        *services.ThreadService
	Events         *services.EventService
	Triggers       *trigger.Service
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *runner.WorkerPool

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg        *config.Config
	llmClient  *ScriptedLLMClient
	sharedDB   *testdb.SharedTestDB
	instanceID string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithSharedDB boots the app against an existing shared schema. Used for
// multi-replica tests where several TestApp instances share one database.
func WithSharedDB(shared *testdb.SharedTestDB) TestAppOption {
	return func(c *testAppConfig) { c.sharedDB = shared }
}

// WithInstanceID overrides the auto-generated instance ID. Required for
// multi-replica tests so each replica gets a distinct identity for run
// claiming and orphan detection.
func WithInstanceID(id string) TestAppOption {
	return func(c *testAppConfig) { c.instanceID = id }
}

// TestConfig returns a config with timers tightened for tests.
func TestConfig() *config.Config {
	return &config.Config{
		Server: &config.ServerConfig{
			Port:            "0",
			WSWriteTimeout:  2 * time.Second,
			StreamKeepAlive: 100 * time.Millisecond,
		},
		Queue: &config.QueueConfig{
			WorkerCount:             2,
			MaxConcurrentRuns:       10,
			PollInterval:            50 * time.Millisecond,
			PollIntervalJitter:      10 * time.Millisecond,
			RunTimeout:              30 * time.Second,
			GracefulShutdownTimeout: 10 * time.Second,
			HeartbeatInterval:       200 * time.Millisecond,
			OrphanDetectionInterval: time.Second,
			OrphanThreshold:         2 * time.Second,
		},
		Events: &config.EventsConfig{
			CleanupGrace:  time.Minute,
			TTL:           24 * time.Hour,
			SweepInterval: time.Hour,
		},
		LLM: &config.LLMConfig{
			Addr:         "scripted",
			DefaultModel: "gpt-4o",
		},
		Trigger: config.DefaultTriggerConfig(),
		Sandbox: config.DefaultSandboxConfig(),
	}
}

// NewTestApp boots a full agentd instance. Everything is shut down via
// t.Cleanup in reverse boot order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	ac := &testAppConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.cfg == nil {
		ac.cfg = TestConfig()
	}
	if ac.llmClient == nil {
		ac.llmClient = NewScriptedLLMClient()
	}
	if ac.sharedDB == nil {
		ac.sharedDB = testdb.NewSharedTestDB(t)
	}
	if ac.instanceID == "" {
		ac.instanceID = "e2e-" + t.Name()
	}

	dbClient := ac.sharedDB.NewClient(t)

	runService := services.NewRunService(dbClient.Client)
	threadService := services.NewThreadService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	triggerStore := services.NewTriggerService(dbClient.Client)

	// Streaming infrastructure with a dedicated LISTEN connection, as in
	// production.
	publisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), ac.cfg.Server.WSWriteTimeout)
	notifyListener := events.NewNotifyListener(ac.sharedDB.ConnString(), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	t.Cleanup(func() { notifyListener.Stop(context.Background()) })
	connManager.SetListener(notifyListener)

	toolRegistry := tools.NewRegistry()
	toolRegistry.Register(tools.NewAskTool())
	toolRegistry.Register(tools.NewCompleteTool())

	executor := runner.NewExecutor(threadService, eventService, ac.llmClient,
		toolRegistry, publisher, connManager, ac.cfg.LLM.DefaultModel)

	pool := runner.NewWorkerPool(ac.instanceID, runService, eventService,
		ac.cfg.Queue, ac.cfg.Events.CleanupGrace, executor, publisher)
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	triggerRegistry := trigger.NewRegistry()
	triggerRegistry.Register(trigger.NewWebhookProvider())
	triggerService := trigger.NewService(triggerStore, triggerRegistry)

	executionBridge := bridge.NewBridge(projectService, threadService,
		runService, workflowService, sandbox.NewFakeProvider(),
		ac.cfg.LLM.DefaultModel, toolRegistry.Names())

	server := api.NewServer(api.Deps{
		Config:    ac.cfg,
		DB:        dbClient,
		Runs:      runService,
		Threads:   threadService,
		Events:    eventService,
		Workflows: workflowService,
		Triggers:  triggerService,
		Bridge:    executionBridge,
		Pool:      pool,
		Publisher: publisher,
		Manager:   connManager,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	httpServer := &http.Server{Handler: server.Router()}
	go func() { _ = httpServer.Serve(ln) }()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	})

	addr := ln.Addr().String()
	return &TestApp{
		Config:         ac.cfg,
		DBClient:       dbClient,
		EntClient:      dbClient.Client,
		LLMClient:      ac.llmClient,
		Runs:           runService,
		Threads:        threadService,
		Events:         eventService,
		Triggers:       triggerService,
		EventPublisher: publisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     pool,
		BaseURL:        "http://" + addr,
		WSURL:          "ws://" + addr + "/ws",
		t:              t,
	}
}
