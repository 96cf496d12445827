package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/ent/thread"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/google/uuid"
)

// RunService manages agent run lifecycle: enqueue, claim, heartbeat,
// finalize.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun enqueues a new agent run on a thread. The run starts pending;
// a worker claims and executes it.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.AgentRun, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if req.Model == "" {
		return nil, NewValidationError("model", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Thread.Query().
		Where(thread.IDEQ(req.ThreadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	builder := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetThreadID(req.ThreadID).
		SetModel(req.Model).
		SetStatus(agentrun.StatusPending).
		SetCreatedAt(time.Now())
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if req.AgentID != "" {
		builder.SetAgentID(req.AgentID)
	}
	if req.ProcessorConfig != nil {
		builder.SetProcessorConfig(req.ProcessorConfig)
	}
	if req.SystemPromptSuffix != "" {
		builder.SetSystemPromptSuffix(req.SystemPromptSuffix)
	}
	if req.AgentConfig != nil {
		builder.SetAgentConfig(req.AgentConfig)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRunsByThread retrieves all runs of a thread, newest first
func (s *RunService) ListRunsByThread(ctx context.Context, threadID string) ([]*ent.AgentRun, error) {
	runs, err := s.client.AgentRun.Query().
		Where(agentrun.ThreadIDEQ(threadID)).
		Order(ent.Desc(agentrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// ClaimNextPending atomically claims the oldest pending run for this worker
// instance using SELECT ... FOR UPDATE SKIP LOCKED, so concurrent workers
// never claim the same run. Returns ErrNoRunsAvailable when the queue is
// empty.
func (s *RunService) ClaimNextPending(ctx context.Context, instanceID string) (*ent.AgentRun, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Order(ent.Asc(agentrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending runs: %w", err)
	}

	now := time.Now()
	run, err = run.Update().
		SetStatus(agentrun.StatusRunning).
		SetInstanceID(instanceID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// Heartbeat refreshes a running run's liveness marker. A no-op when the run
// is no longer owned by this instance.
func (s *RunService) Heartbeat(ctx context.Context, runID, instanceID string) error {
	_, err := s.client.AgentRun.Update().
		Where(
			agentrun.IDEQ(runID),
			agentrun.InstanceIDEQ(instanceID),
			agentrun.StatusEQ(agentrun.StatusRunning),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// FinalizeRun moves a run to a terminal status and stores the responses
// snapshot. Uses a background context so finalization survives request or
// worker cancellation.
func (s *RunService) FinalizeRun(httpCtx context.Context, runID string, status agentrun.Status, errorMessage string, responses []map[string]any) (*ent.AgentRun, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AgentRun.UpdateOneID(runID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errorMessage != "" {
		builder.SetErrorMessage(errorMessage)
	}
	if responses != nil {
		builder.SetResponses(responses)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to finalize run: %w", err)
	}

	return run, nil
}

// CountRunning counts runs currently owned by this worker instance — the
// capacity gate before claiming more work.
func (s *RunService) CountRunning(ctx context.Context, instanceID string) (int, error) {
	count, err := s.client.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.InstanceIDEQ(instanceID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running runs: %w", err)
	}
	return count, nil
}

// CountActive counts running runs across all instances — the global
// concurrency gate.
func (s *RunService) CountActive(ctx context.Context) (int, error) {
	count, err := s.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active runs: %w", err)
	}
	return count, nil
}

// ListRunningByInstance returns runs still marked running under an instance
// id — startup orphans when queried for our own id before workers begin.
func (s *RunService) ListRunningByInstance(ctx context.Context, instanceID string) ([]*ent.AgentRun, error) {
	runs, err := s.client.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.InstanceIDEQ(instanceID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instance runs: %w", err)
	}
	return runs, nil
}

// QueueDepth counts pending runs across all instances
func (s *RunService) QueueDepth(ctx context.Context) (int, error) {
	count, err := s.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending runs: %w", err)
	}
	return count, nil
}

// FindStaleRunning returns running runs whose heartbeat is older than the
// cutoff — candidates for orphan recovery.
func (s *RunService) FindStaleRunning(ctx context.Context, staleAfter time.Duration) ([]*ent.AgentRun, error) {
	cutoff := time.Now().Add(-staleAfter)

	runs, err := s.client.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.Or(
				agentrun.LastHeartbeatAtLT(cutoff),
				agentrun.LastHeartbeatAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale runs: %w", err)
	}

	return runs, nil
}

// MarkStopped transitions a pending or running run to stopped. Running runs
// are normally stopped through the control channel by the owning worker;
// this direct transition covers pending runs and orphan recovery. Returns
// ErrNotStoppable when the run is already terminal.
func (s *RunService) MarkStopped(httpCtx context.Context, runID string) (*ent.AgentRun, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.AgentRun.Update().
		Where(
			agentrun.IDEQ(runID),
			agentrun.StatusIn(agentrun.StatusPending, agentrun.StatusRunning),
		).
		SetStatus(agentrun.StatusStopped).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to stop run: %w", err)
	}
	if n == 0 {
		return nil, ErrNotStoppable
	}

	return s.GetRun(ctx, runID)
}
