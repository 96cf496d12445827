// agentd server — provides the HTTP API, manages queue workers, and
// executes agent runs against the LLM gateway.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentd-io/agentd/pkg/api"
	"github.com/agentd-io/agentd/pkg/bridge"
	"github.com/agentd-io/agentd/pkg/cleanup"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/database"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/runner"
	"github.com/agentd-io/agentd/pkg/sandbox"
	"github.com/agentd-io/agentd/pkg/services"
	"github.com/agentd-io/agentd/pkg/tools"
	"github.com/agentd-io/agentd/pkg/trigger"
	"github.com/agentd-io/agentd/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveInstanceID determines this instance's identifier for multi-replica
// coordination. Priority: INSTANCE_ID env > HOSTNAME env > "local"
func resolveInstanceID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	instanceID := resolveInstanceID()

	slog.Info("Starting agentd",
		"version", version.Full(),
		"instance_id", instanceID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	runService := services.NewRunService(dbClient.Client)
	threadService := services.NewThreadService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	triggerStore := services.NewTriggerService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup
	if err := runner.CleanupStartupOrphans(ctx, runService, instanceID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call.
	var llmClient llm.Client
	primary, err := llm.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	llmClient = primary
	if cfg.LLM.FallbackAddr != "" {
		fallback, err := llm.NewGRPCClient(cfg.LLM.FallbackAddr)
		if err != nil {
			slog.Error("Failed to initialize fallback LLM client",
				"addr", cfg.LLM.FallbackAddr, "error", err)
			os.Exit(1)
		}
		llmClient = llm.NewFallbackClient(primary, fallback)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized",
		"addr", cfg.LLM.Addr, "fallback_addr", cfg.LLM.FallbackAddr)

	// 6. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, cfg.Server.WSWriteTimeout)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Tools and run executor
	toolRegistry := tools.NewRegistry()
	toolRegistry.Register(tools.NewAskTool())
	toolRegistry.Register(tools.NewCompleteTool())

	executor := runner.NewExecutor(threadService, eventService, llmClient,
		toolRegistry, eventPublisher, connManager, cfg.LLM.DefaultModel)

	// 8. Start worker pool (before HTTP server)
	workerPool := runner.NewWorkerPool(instanceID, runService, eventService,
		cfg.Queue, cfg.Events.CleanupGrace, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Event retention sweep
	retention := cleanup.NewService(cfg.Events, eventService)
	retention.Start(ctx)
	defer retention.Stop()

	// 10. Triggers and the execution bridge
	triggerRegistry := trigger.NewRegistry()
	triggerRegistry.Register(trigger.NewWebhookProvider())
	if cfg.Trigger.SchedulerURL != "" {
		scheduler := trigger.NewHTTPScheduler(cfg.Trigger.SchedulerURL)
		triggerRegistry.Register(trigger.NewScheduleProvider(scheduler, cfg.Trigger))
	} else {
		slog.Warn("No scheduler_url configured — schedule triggers disabled")
	}

	triggerService := trigger.NewService(triggerStore, triggerRegistry)
	if err := triggerService.ResyncProviders(ctx); err != nil {
		slog.Error("Trigger resync failed", "error", err)
		// Non-fatal — unhealthy triggers are logged per trigger
	}

	var sandboxProvider sandbox.Provider
	if cfg.Sandbox.BaseURL != "" {
		sandboxProvider = sandbox.NewHTTPProvider(cfg.Sandbox)
		slog.Info("Sandbox provisioning enabled", "base_url", cfg.Sandbox.BaseURL)
	}

	executionBridge := bridge.NewBridge(projectService, threadService,
		runService, workflowService, sandboxProvider, cfg.LLM.DefaultModel,
		toolRegistry.Names())

	// 11. HTTP server
	server := api.NewServer(api.Deps{
		Config:    cfg,
		DB:        dbClient,
		Runs:      runService,
		Threads:   threadService,
		Events:    eventService,
		Workflows: workflowService,
		Triggers:  triggerService,
		Bridge:    executionBridge,
		Pool:      workerPool,
		Publisher: eventPublisher,
		Manager:   connManager,
	})
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Router(),
	}

	// 12. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("agentd started successfully",
		"instance_id", instanceID,
		"workers", cfg.Queue.WorkerCount)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: wait for active runs to finish, bounded by the
	// configured timeout. Anything still running after that is left for
	// orphan recovery on the next claim scan.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
