// Package runner provides the run queue worker pool: claiming pending runs,
// driving the LLM stream through the response processor, and finalising.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
)

// ErrAtCapacity indicates the global concurrent run limit has been reached.
var ErrAtCapacity = errors.New("at capacity")

// RunExecutor drives one claimed run to completion.
//
// The executor owns the run's streaming lifecycle internally: building the
// prompt, consuming the LLM stream through the response processor, tool
// execution, auto-continue cycles, and appending every response item to the
// buffer. The worker only handles: claiming, heartbeat, terminal status
// update, and buffer cleanup.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.AgentRun) *ExecutionResult
}

// ExecutionResult is the terminal state of one run. All intermediate state
// (buffer events, thread messages) was already written during processing.
type ExecutionResult struct {
	Status    agentrun.Status  // completed, failed, stopped, agent_terminated
	Error     error            // error details (if failed)
	Responses []map[string]any // snapshot of the run's response items, in order
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	InstanceID       string         `json:"instance_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
