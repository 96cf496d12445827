package runner

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/processor"
	"github.com/agentd-io/agentd/pkg/services"
	"github.com/agentd-io/agentd/pkg/tools"
	"github.com/google/uuid"
)

// Executor drives one claimed run: it builds the prompt from thread history,
// streams the LLM response through the processor, loops on auto-continue,
// and watches the run's control channel for stop signals. Every response
// item lands in the buffer via the event publisher.
type Executor struct {
	threads      *services.ThreadService
	eventService *services.EventService
	llmClient    llm.Client
	tools        *tools.Registry
	publisher    *events.EventPublisher
	manager      *events.ConnectionManager
	counter      *llm.TokenCounter
	defaultModel string
	logger       *slog.Logger
}

// NewExecutor creates a run executor. manager may be nil (stop signals from
// other instances disabled, used by some tests).
func NewExecutor(threads *services.ThreadService, eventService *services.EventService, llmClient llm.Client, registry *tools.Registry, publisher *events.EventPublisher, manager *events.ConnectionManager, defaultModel string) *Executor {
	return &Executor{
		threads:      threads,
		eventService: eventService,
		llmClient:    llmClient,
		tools:        registry,
		publisher:    publisher,
		manager:      manager,
		counter:      llm.NewTokenCounter(),
		defaultModel: defaultModel,
		logger:       slog.Default(),
	}
}

// Execute runs the streaming lifecycle for one claimed run.
func (e *Executor) Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult {
	log := e.logger.With("run_id", run.ID, "thread_id", run.ThreadID)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Watch the control channel: a STOP published on any instance reaches
	// us through LISTEN/NOTIFY and cancels the run context.
	var stopRequested atomic.Bool
	if e.manager != nil {
		sub, err := e.manager.SubscribeLocal(ctx, events.RunControlChannel(run.ID))
		if err != nil {
			log.Warn("Failed to subscribe to control channel", "error", err)
		} else {
			defer sub.Close()
			go func() {
				for payload := range sub.C {
					var cp events.ControlPayload
					if err := json.Unmarshal(payload, &cp); err != nil {
						continue
					}
					if cp.Signal == models.ControlStop {
						log.Info("Stop signal received", "reason", cp.Reason)
						stopRequested.Store(true)
						cancel()
						return
					}
				}
			}()
		}
	}

	cfg := e.processorConfig(run)
	proc, err := processor.New(cfg, e.threads, e.tools, e.counter, e.logger)
	if err != nil {
		return e.terminal(run, &stopRequested, err)
	}

	model := run.Model
	if model == "" {
		model = e.defaultModel
	}

	sink := func(ctx context.Context, item *models.ResponseItem) error {
		return e.publisher.PublishResponseItem(ctx, run.ID, events.ResponseItemPayload{
			Type:      events.EventTypeResponseNew,
			RunID:     run.ID,
			ThreadID:  run.ThreadID,
			Item:      item.ToMap(),
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
	}

	threadRunID := uuid.New().String()
	var continuous *processor.ContinuousState
	var final *processor.Result

	for cycle := 0; ; cycle++ {
		prompt, err := e.threads.GetLLMMessages(runCtx, run.ThreadID)
		if err != nil {
			return e.terminal(run, &stopRequested, err)
		}
		prompt = withSystemPrompt(run, prompt)

		chunks, err := e.llmClient.Generate(runCtx, &llm.Request{
			RunID:    run.ID,
			ThreadID: run.ThreadID,
			Model:    model,
			Messages: prompt,
			Tools:    e.tools.Definitions(),
			Stream:   true,
		})
		if err != nil {
			return e.terminal(run, &stopRequested, err)
		}

		result, err := proc.ProcessStream(runCtx, &processor.StreamInput{
			ThreadID:        run.ThreadID,
			ThreadRunID:     threadRunID,
			Model:           model,
			Prompt:          prompt,
			Chunks:          chunks,
			Continuous:      continuous,
			CanAutoContinue: cycle < cfg.MaxAutoContinues,
			Sink:            sink,
		})
		if err != nil {
			return e.terminal(run, &stopRequested, err)
		}

		final = result
		if result.ShouldAutoContinue && result.Continuous != nil {
			log.Info("Auto-continuing after length cutoff", "cycle", cycle+1)
			continuous = result.Continuous
			continue
		}
		break
	}

	status := agentrun.StatusCompleted
	if final.AgentTerminated {
		status = agentrun.StatusAgentTerminated
	}

	log.Info("Run execution finished", "status", status, "finish_reason", final.FinishReason)
	return &ExecutionResult{
		Status:    status,
		Responses: e.collectResponses(run.ID),
	}
}

// terminal builds the failure/stop result, including the buffer snapshot of
// whatever was produced before the run ended.
func (e *Executor) terminal(run *ent.AgentRun, stopRequested *atomic.Bool, err error) *ExecutionResult {
	responses := e.collectResponses(run.ID)

	if stopRequested.Load() || errors.Is(err, context.Canceled) {
		return &ExecutionResult{
			Status:    agentrun.StatusStopped,
			Error:     context.Canceled,
			Responses: responses,
		}
	}
	return &ExecutionResult{
		Status:    agentrun.StatusFailed,
		Error:     err,
		Responses: responses,
	}
}

// collectResponses snapshots the run's buffered response items in append
// order, for persistence on the run record. Best-effort: an empty snapshot
// on error, the buffer rows remain until cleanup anyway.
func (e *Executor) collectResponses(runID string) []map[string]any {
	ctx, cancelQuery := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelQuery()

	rows, err := e.eventService.GetEventsSince(ctx, events.RunChannel(runID), 0, 0)
	if err != nil {
		e.logger.Warn("Failed to snapshot run responses", "run_id", runID, "error", err)
		return nil
	}

	responses := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if t, _ := row.Payload["type"].(string); t != events.EventTypeResponseNew {
			continue
		}
		if item, ok := row.Payload["item"].(map[string]any); ok {
			responses = append(responses, item)
		}
	}
	return responses
}

// processorConfig overlays the run's stored processor options on defaults.
func (e *Executor) processorConfig(run *ent.AgentRun) processor.Config {
	cfg := processor.DefaultConfig()
	if len(run.ProcessorConfig) == 0 {
		return cfg
	}

	raw, err := json.Marshal(run.ProcessorConfig)
	if err != nil {
		e.logger.Warn("Failed to encode processor config, using defaults", "run_id", run.ID, "error", err)
		return cfg
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		e.logger.Warn("Failed to decode processor config, using defaults", "run_id", run.ID, "error", err)
		return processor.DefaultConfig()
	}
	return cfg
}

// withSystemPrompt prepends a system message built from the run's agent
// config and the trigger/workflow prompt suffix, when either is present.
func withSystemPrompt(run *ent.AgentRun, prompt []models.PromptMessage) []models.PromptMessage {
	var parts []string
	if run.AgentConfig != nil {
		if sp, ok := run.AgentConfig["system_prompt"].(string); ok && sp != "" {
			parts = append(parts, sp)
		}
	}
	if run.SystemPromptSuffix != nil && *run.SystemPromptSuffix != "" {
		parts = append(parts, *run.SystemPromptSuffix)
	}
	if len(parts) == 0 {
		return prompt
	}

	system := models.PromptMessage{
		Role:    "system",
		Content: strings.Join(parts, "\n\n"),
	}
	return append([]models.PromptMessage{system}, prompt...)
}
