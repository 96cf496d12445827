package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// Worker is a single queue worker that polls for and processes runs.
type Worker struct {
	id           string
	instanceID   string
	runs         *services.RunService
	eventService *services.EventService
	config       *config.QueueConfig
	cleanupGrace time.Duration
	executor     RunExecutor
	publisher    *events.EventPublisher
	pool         RunRegistry
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
// publisher may be nil (status events disabled, used by some tests).
func NewWorker(id, instanceID string, runs *services.RunService, eventService *services.EventService, cfg *config.QueueConfig, cleanupGrace time.Duration, executor RunExecutor, pool RunRegistry, publisher *events.EventPublisher) *Worker {
	return &Worker{
		id:           id,
		instanceID:   instanceID,
		runs:         runs,
		eventService: eventService,
		config:       cfg,
		cleanupGrace: cleanupGrace,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "instance_id", w.instanceID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.runs.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	run, err := w.runs.ClaimNextPending(ctx, w.instanceID)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed")

	// Publish run status "running" to the run and global channels
	w.publishRunStatus(ctx, run, agentrun.StatusRunning, "")

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create run context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for API/control-triggered cancellation
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, run.ID)

	// 6. Execute run
	result := w.executor.Execute(runCtx, run)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: agentrun.StatusFailed,
				Error:  fmt.Errorf("run timed out after %v", w.config.RunTimeout),
			}
		case errors.Is(runCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: agentrun.StatusStopped,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: agentrun.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Handle timeout
	if result.Status == "" && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status:    agentrun.StatusFailed,
			Error:     fmt.Errorf("run timed out after %v", w.config.RunTimeout),
			Responses: result.Responses,
		}
	}

	// 8. Handle cancellation
	if result.Status == "" && errors.Is(runCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status:    agentrun.StatusStopped,
			Error:     context.Canceled,
			Responses: result.Responses,
		}
	}

	// 9. Stop heartbeat
	cancelHeartbeat()

	// 10. Update terminal status (use background context — run ctx may be cancelled)
	errMsg := ""
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	finalized, err := w.runs.FinalizeRun(context.Background(), run.ID, result.Status, errMsg, result.Responses)
	if err != nil {
		// The write failed but viewers still need the terminal marker, or
		// they hang on keep-alives; the orphan pass reconciles the row.
		log.Error("Failed to update run terminal status", "error", err)
		finalized = run
	}

	// 10a. Publish terminal run status event
	w.publishRunStatus(context.Background(), finalized, result.Status, errMsg)

	// 11. Cleanup buffer events after the grace period, allowing stream
	// viewers to receive final events before the rows are deleted.
	w.scheduleEventCleanup(run.ID)

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	if err != nil {
		return fmt.Errorf("finalizing run %s: %w", run.ID, err)
	}
	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.runs.Heartbeat(ctx, runID, w.instanceID); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// publishRunStatus publishes a run status event to the run and global
// channels for real-time delivery. Non-blocking: errors are logged.
func (w *Worker) publishRunStatus(ctx context.Context, run *ent.AgentRun, status agentrun.Status, errMsg string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishRunStatus(ctx, run.ID, events.RunStatusPayload{
		Type:         events.EventTypeRunStatus,
		RunID:        run.ID,
		ThreadID:     run.ThreadID,
		Status:       string(status),
		ErrorMessage: errMsg,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish run status",
			"run_id", run.ID, "status", status, "error", err)
	}
}

// scheduleEventCleanup schedules deletion of the run's buffer events after
// the grace period, allowing stream viewers to receive the final items.
func (w *Worker) scheduleEventCleanup(runID string) {
	time.AfterFunc(w.cleanupGrace, func() {
		if _, err := w.eventService.CleanupRunEvents(context.Background(), runID); err != nil {
			slog.Warn("Failed to cleanup run events after grace period",
				"run_id", runID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
