// Package api exposes the HTTP surface: run enqueue/stop, SSE streaming,
// the dashboard WebSocket, trigger and workflow management, and health.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/agentd-io/agentd/pkg/bridge"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/database"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/runner"
	"github.com/agentd-io/agentd/pkg/services"
	"github.com/agentd-io/agentd/pkg/trigger"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Config    *config.Config
	DB        *database.Client
	Runs      *services.RunService
	Threads   *services.ThreadService
	Events    *services.EventService
	Workflows *services.WorkflowService
	Triggers  *trigger.Service
	Bridge    *bridge.Bridge
	Pool      *runner.WorkerPool
	Publisher *events.EventPublisher
	Manager   *events.ConnectionManager
}

// Server is the HTTP API server.
type Server struct {
	cfg       *config.Config
	db        *database.Client
	runs      *services.RunService
	threads   *services.ThreadService
	events    *services.EventService
	workflows *services.WorkflowService
	triggers  *trigger.Service
	bridge    *bridge.Bridge
	pool      *runner.WorkerPool
	publisher *events.EventPublisher
	manager   *events.ConnectionManager
	logger    *slog.Logger
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		cfg:       deps.Config,
		db:        deps.DB,
		runs:      deps.Runs,
		threads:   deps.Threads,
		events:    deps.Events,
		workflows: deps.Workflows,
		triggers:  deps.Triggers,
		bridge:    deps.Bridge,
		pool:      deps.Pool,
		publisher: deps.Publisher,
		manager:   deps.Manager,
		logger:    slog.Default(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.Health)
	r.GET("/ws", s.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/queue/health", s.QueueHealth)

		v1.POST("/threads", s.CreateThread)
		v1.GET("/threads/:thread_id", s.GetThread)
		v1.GET("/threads/:thread_id/messages", s.GetThreadMessages)
		v1.POST("/threads/:thread_id/runs", s.CreateRun)
		v1.GET("/threads/:thread_id/runs", s.ListThreadRuns)

		v1.GET("/runs/:run_id", s.GetRun)
		v1.POST("/runs/:run_id/stop", s.StopRun)
		v1.GET("/runs/:run_id/stream", s.StreamRun)

		v1.POST("/agents/:agent_id/triggers", s.CreateTrigger)
		v1.GET("/agents/:agent_id/triggers", s.ListTriggers)
		v1.GET("/triggers/:trigger_id", s.GetTrigger)
		v1.PATCH("/triggers/:trigger_id", s.UpdateTrigger)
		v1.DELETE("/triggers/:trigger_id", s.DeleteTrigger)
		v1.GET("/triggers/:trigger_id/logs", s.ListTriggerLogs)
		v1.POST("/triggers/:trigger_id/webhook", s.TriggerWebhook)

		v1.POST("/agents/:agent_id/workflows", s.CreateWorkflow)
		v1.GET("/agents/:agent_id/workflows", s.ListWorkflows)
		v1.GET("/workflows/:workflow_id", s.GetWorkflow)
		v1.PATCH("/workflows/:workflow_id", s.UpdateWorkflow)
		v1.DELETE("/workflows/:workflow_id", s.DeleteWorkflow)
	}

	return r
}
