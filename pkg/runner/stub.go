package runner

import (
	"context"
	"log/slog"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
)

// StubExecutor is a no-op RunExecutor used when no LLM gateway is
// configured, and by tests exercising the worker lifecycle.
type StubExecutor struct{}

// NewStubExecutor creates a new stub executor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute returns a completed result immediately.
func (e *StubExecutor) Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult {
	runID := ""
	threadID := ""
	if run != nil {
		runID = run.ID
		threadID = run.ThreadID
	}
	slog.Info("Stub executor: run processing (no-op)",
		"run_id", runID,
		"thread_id", threadID,
	)

	// Check if context is already cancelled
	if ctx.Err() != nil {
		return &ExecutionResult{
			Status: agentrun.StatusStopped,
			Error:  ctx.Err(),
		}
	}

	return &ExecutionResult{
		Status: agentrun.StatusCompleted,
	}
}
